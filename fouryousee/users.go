package fouryousee

import "context"

// Users lists the users of the account
func (c *Client) Users(ctx context.Context) ([]Record, error) {
	result, err := c.Get(ctx, ResourceUsers, All{})
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

// UserGroups lists the user groups of the account
func (c *Client) UserGroups(ctx context.Context) ([]Record, error) {
	result, err := c.Get(ctx, ResourceUserGroups, All{})
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}
