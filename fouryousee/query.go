package fouryousee

import (
	"net/url"
	"strconv"
)

// Query selects what a resource getter returns. It is one of All, Filter
// or ByID.
type Query interface {
	isQuery()
}

// All asks for every record of a resource
type All struct{}

// Filter holds server side filter parameters, sent as query string values
type Filter map[string]string

// ByID asks for a single record
type ByID string

// idWithParams is a lookup by id that also forwards server side
// parameters, such as a media fetched with its metadata
type idWithParams struct {
	id     string
	params Filter
}

func (All) isQuery()          {}
func (Filter) isQuery()       {}
func (ByID) isQuery()         {}
func (idWithParams) isQuery() {}

// ID builds a ByID query from a numeric id
func ID(id int64) ByID {
	return ByID(strconv.FormatInt(id, 10))
}

// Values converts the filter to query string values
func (f Filter) Values() url.Values {
	if len(f) == 0 {
		return nil
	}
	values := make(url.Values, len(f))
	for k, v := range f {
		values.Set(k, v)
	}
	return values
}

// normalize folds the shapes a caller may use into the canonical query:
// nil and empty filters mean All and a filter holding only an id means
// ByID. An id mixed with other filters is looked up with those filters
// forwarded on resources that accept filters, and rejected on the ones
// that only accept an id.
func normalize(res Resource, p policy, q Query) (Query, error) {
	f, ok := q.(Filter)
	if q == nil || (ok && len(f) == 0) {
		return All{}, nil
	}
	if !ok || p.byID == lookupParam {
		return q, nil
	}
	id, hasID := f["id"]
	if !hasID {
		return q, nil
	}
	if len(f) == 1 {
		return ByID(id), nil
	}
	if !p.filter || p.byID != lookupServer {
		return nil, &UsageError{Resource: res, Message: "id cannot be combined with other filters"}
	}
	params := make(Filter, len(f)-1)
	for k, v := range f {
		if k != "id" {
			params[k] = v
		}
	}
	return idWithParams{id: id, params: params}, nil
}
