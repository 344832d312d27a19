package fouryousee

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

// envelope is one decoded GET response
type envelope struct {
	// paged is set when the body carried a non-zero totalPages
	paged      bool
	totalPages int
	results    []Record
	// result is the final answer for unpaged bodies
	result Result
}

// FetchAll retrieves every record under path, following the page envelope
// until the page count announced by the server is reached. With a non-empty
// id it makes a single request to path/id instead.
//
// Pages are requested in order, once each. A failing page aborts the whole
// fetch and the pages already read are discarded.
func (c *Client) FetchAll(ctx context.Context, path, id string, params url.Values) (Result, error) {
	if id != "" {
		body, err := c.doRequest(ctx, http.MethodGet, path+"/"+url.PathEscape(id), params, nil, contentTypeJSON)
		if err != nil {
			return Result{}, err
		}
		env, err := decodeEnvelope(body)
		if err != nil {
			return Result{}, err
		}
		if env.paged {
			return Result{Records: env.results}, nil
		}
		return env.result, nil
	}

	var all []Record
	for page, total := 1, 1; page <= total; page++ {
		query := make(url.Values, len(params)+1)
		for k, v := range params {
			query[k] = v
		}
		query.Set("page", strconv.Itoa(page))

		body, err := c.doRequest(ctx, http.MethodGet, path, query, nil, contentTypeJSON)
		if err != nil {
			return Result{}, fmt.Errorf("failed to get %s page %d: %w", path, page, err)
		}

		env, err := decodeEnvelope(body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to get %s page %d: %w", path, page, err)
		}
		if !env.paged {
			return env.result, nil
		}

		total = env.totalPages
		all = append(all, env.results...)

		c.logger.Debug().
			Str("resource", path).
			Int("page", page).
			Int("pages", total).
			Int("count", len(env.results)).
			Int("total", len(all)).
			Msg("Retrieved page from 4YouSee")
	}

	if all == nil {
		all = []Record{}
	}
	return Result{Records: all}, nil
}

// decodeEnvelope sorts a body into one of the shapes the API uses:
//
//	[...]                          bare list
//	{"results": []}                empty, final
//	{"results": [...]}             single page, already unwrapped
//	{...}                          bare object
//	{"totalPages": n, "results"}   one page of n
//
// A totalPages of zero counts as absent.
func decodeEnvelope(body []byte) (envelope, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return envelope{}, fmt.Errorf("failed to parse response: %w", err)
	}

	switch v := raw.(type) {
	case []any:
		records, err := toRecords(v)
		if err != nil {
			return envelope{}, err
		}
		return envelope{result: Result{Records: records}}, nil

	case map[string]any:
		if total := intValue(v["totalPages"]); total > 0 {
			list, _ := v["results"].([]any)
			records, err := toRecords(list)
			if err != nil {
				return envelope{}, err
			}
			return envelope{paged: true, totalPages: total, results: records}, nil
		}

		switch results := v["results"].(type) {
		case []any:
			if len(results) == 0 {
				return envelope{result: Result{Records: []Record{}}}, nil
			}
			records, err := toRecords(results)
			if err != nil {
				return envelope{}, err
			}
			return envelope{result: Result{Records: records}}, nil
		case map[string]any:
			if len(results) > 0 {
				return envelope{result: Result{Object: Record(results)}}, nil
			}
		}
		return envelope{result: Result{Object: Record(v)}}, nil

	default:
		return envelope{}, fmt.Errorf("%w: %T", ErrUnexpectedResponse, raw)
	}
}

func toRecords(items []any) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T", ErrUnexpectedResponse, i, item)
		}
		records = append(records, Record(obj))
	}
	return records, nil
}
