package fouryousee

import "context"

// PlaylistInput describes a playlist to create
type PlaylistInput struct {
	Name          string   `json:"name" validate:"required"`
	IsSubPlaylist bool     `json:"isSubPlaylist"`
	Category      int      `json:"category,omitempty" validate:"gte=0"`
	Items         []Record `json:"items,omitempty"`
	Sequence      []int    `json:"sequence,omitempty"`
}

// PlaylistUpdate holds the playlist fields to change; nil fields keep
// their current value
type PlaylistUpdate struct {
	Name          *string  `json:"name,omitempty"`
	IsSubPlaylist *bool    `json:"isSubPlaylist,omitempty"`
	Category      *int     `json:"category,omitempty" validate:"omitempty,gt=0"`
	Items         []Record `json:"items,omitempty"`
	Sequence      []int    `json:"sequence,omitempty"`
}

// Playlists returns playlists; ByID asks the server and fails with an
// APIError on a miss
func (c *Client) Playlists(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourcePlaylists, q)
}

// AddPlaylist creates a playlist. Names over 50 characters are shortened.
func (c *Client) AddPlaylist(ctx context.Context, in PlaylistInput) (Record, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	in.Name = truncateName(in.Name, playlistNameLimit)
	return c.create(ctx, ResourcePlaylists, in)
}

// EditPlaylist merges upd into the current playlist and saves it. Names
// over 40 characters are shortened.
func (c *Client) EditPlaylist(ctx context.Context, id string, upd PlaylistUpdate) (Record, error) {
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	current, err := c.fetchExisting(ctx, ResourcePlaylists, id)
	if err != nil {
		return nil, err
	}

	body := briefPlaylist(current)
	if upd.Name != nil {
		body["name"] = *upd.Name
	}
	if upd.IsSubPlaylist != nil {
		body["isSubPlaylist"] = *upd.IsSubPlaylist
	}
	if upd.Category != nil {
		body["category"] = *upd.Category
	}
	if upd.Items != nil {
		body["items"] = upd.Items
	}
	if upd.Sequence != nil {
		body["sequence"] = upd.Sequence
	}
	if name, ok := body["name"].(string); ok {
		body["name"] = truncateName(name, playlistEditNameLimit)
	}

	return c.update(ctx, ResourcePlaylists, id, body)
}

// DeletePlaylist removes a playlist after checking it exists
func (c *Client) DeletePlaylist(ctx context.Context, id string) (bool, error) {
	return c.deleteExisting(ctx, ResourcePlaylists, id)
}
