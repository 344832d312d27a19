package fouryousee

import (
	"maps"
	"sync"
)

// listCache keeps the last full listing fetched per resource. A listing is
// replaced by the next full fetch and dropped by any create, update or
// delete on the same resource.
//
// Records are copied on the way in and out, so callers may modify what
// they get back. The copy is shallow: nested objects stay shared.
type listCache struct {
	mu      sync.Mutex
	entries map[Resource][]Record
}

func newListCache() *listCache {
	return &listCache{entries: make(map[Resource][]Record)}
}

func (c *listCache) get(res Resource) ([]Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, ok := c.entries[res]
	if !ok {
		return nil, false
	}
	return cloneRecords(records), true
}

func (c *listCache) store(res Resource, records []Record) {
	c.mu.Lock()
	c.entries[res] = cloneRecords(records)
	c.mu.Unlock()
}

func (c *listCache) invalidate(res Resource) {
	c.mu.Lock()
	delete(c.entries, res)
	c.mu.Unlock()
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = maps.Clone(rec)
	}
	return out
}
