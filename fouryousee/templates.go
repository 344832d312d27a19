package fouryousee

import "context"

// Templates returns the HTML templates. The API cannot look templates up
// by id, so ByID filters the full listing and yields an empty Result on a
// miss.
func (c *Client) Templates(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceTemplates, q)
}
