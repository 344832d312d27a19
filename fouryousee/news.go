package fouryousee

import "context"

// Newsources returns the RSS news sources. The id is sent as a query
// parameter and may be combined with other filters.
func (c *Client) Newsources(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceNewsources, q)
}

// News returns news items; filters such as newsourceId are applied by the
// server
func (c *Client) News(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceNews, q)
}
