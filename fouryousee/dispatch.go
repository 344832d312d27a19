package fouryousee

import (
	"context"
	"fmt"
	"net/url"
)

// Get runs q against res following the resource's dispatch policy.
//
//   - All lists every record and refreshes the cached listing
//   - Filter forwards the parameters and returns whatever the server sends
//   - ByID asks the server for path/id, or filters the full listing
//     locally for resources whose API cannot look records up by id
//   - a Filter holding an id and other parameters asks for path/id with
//     the parameters, on resources that accept filters
func (c *Client) Get(ctx context.Context, res Resource, q Query) (Result, error) {
	p, ok := policies[res]
	if !ok {
		return Result{}, &UsageError{Resource: res, Message: "unknown resource"}
	}

	q, err := normalize(res, p, q)
	if err != nil {
		return Result{}, err
	}

	switch q := q.(type) {
	case All:
		return c.listAll(ctx, res)

	case Filter:
		if !p.filter {
			if p.byID == lookupNone {
				return Result{}, &UsageError{Resource: res, Message: "this resource does not accept filters"}
			}
			return Result{}, &UsageError{Resource: res, Message: "this resource only accepts the id field"}
		}
		return c.FetchAll(ctx, string(res), "", q.Values())

	case ByID:
		if q == "" {
			return Result{}, &UsageError{Resource: res, Message: ErrMissingID.Error()}
		}
		switch p.byID {
		case lookupServer:
			return c.FetchAll(ctx, string(res), string(q), nil)
		case lookupLocal:
			listing, err := c.listAll(ctx, res)
			if err != nil {
				return Result{}, err
			}
			return Result{Records: filterID(listing.Records, string(q))}, nil
		case lookupParam:
			return c.FetchAll(ctx, string(res), "", url.Values{"id": {string(q)}})
		default:
			return Result{}, &UsageError{Resource: res, Message: "lookup by id is not supported"}
		}

	case idWithParams:
		if q.id == "" {
			return Result{}, &UsageError{Resource: res, Message: ErrMissingID.Error()}
		}
		return c.FetchAll(ctx, string(res), q.id, q.params.Values())

	default:
		return Result{}, &UsageError{Resource: res, Message: fmt.Sprintf("unsupported query %T", q)}
	}
}

// listAll fetches the whole collection and caches it
func (c *Client) listAll(ctx context.Context, res Resource) (Result, error) {
	result, err := c.FetchAll(ctx, string(res), "", nil)
	if err != nil {
		return Result{}, err
	}
	if result.Object == nil {
		c.cache.store(res, result.Records)
	}
	return result, nil
}

// fetchExisting loads the record an edit starts from
func (c *Client) fetchExisting(ctx context.Context, res Resource, id string) (Record, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Tag: "required", Message: fmt.Sprintf("missing ID of the %s", res.Label()), Err: ErrMissingID}
	}
	result, err := c.Get(ctx, res, ByID(id))
	if err != nil {
		return nil, err
	}
	rec, ok := result.Single()
	if !ok {
		return nil, &NotFoundError{Resource: res.Label(), ID: id}
	}
	return rec, nil
}

// deleteExisting probes for the record and removes it. Any probe failure
// is reported as not found.
func (c *Client) deleteExisting(ctx context.Context, res Resource, id string) (bool, error) {
	if id == "" {
		return false, &ValidationError{Field: "id", Tag: "required", Message: fmt.Sprintf("missing id of the %s", res.Label()), Err: ErrMissingID}
	}

	found, err := c.Get(ctx, res, ByID(id))
	if err != nil || found.Empty() {
		return false, &NotFoundError{Resource: res.Label(), ID: id, Err: err}
	}

	return c.remove(ctx, res, id)
}

// filterID keeps the records whose id equals id
func filterID(records []Record, id string) []Record {
	matches := []Record{}
	for _, rec := range records {
		if rec.ID() == id {
			matches = append(matches, rec)
		}
	}
	return matches
}
