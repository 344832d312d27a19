package fouryousee

import "context"

// Player platforms
const (
	PlatformSamsung = "SAMSUNG"
	PlatformWindows = "WINDOWS"
	PlatformAndroid = "ANDROID"
	Platform4YouSee = "4YOUSEE_PLAYER"
	PlatformLG      = "LG"
)

const defaultGroupID = 1

// PlayerInput describes a player to create.
//
// Playlists maps each weekday "0" (Sunday) to "6" to a playlist id and
// must hold all seven days. Audios holds a single "0" entry.
type PlayerInput struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description,omitempty"`
	Group       int            `json:"group" validate:"gte=0"`
	Platform    string         `json:"platform,omitempty" validate:"omitempty,oneof=SAMSUNG WINDOWS ANDROID 4YOUSEE_PLAYER LG"`
	Playlists   map[string]int `json:"playlists,omitempty" validate:"omitempty,len=7,dive,keys,oneof=0 1 2 3 4 5 6,endkeys,gt=0"`
	Audios      map[string]int `json:"audios,omitempty" validate:"omitempty,len=1,dive,keys,eq=0,endkeys,gt=0"`
}

// PlayerUpdate holds the player fields to change; nil fields keep their
// current value
type PlayerUpdate struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Group       *int           `json:"group,omitempty" validate:"omitempty,gt=0"`
	Platform    *string        `json:"platform,omitempty" validate:"omitempty,oneof=SAMSUNG WINDOWS ANDROID 4YOUSEE_PLAYER LG"`
	Playlists   map[string]int `json:"playlists,omitempty" validate:"omitempty,len=7,dive,keys,oneof=0 1 2 3 4 5 6,endkeys,gt=0"`
	Audios      map[string]int `json:"audios,omitempty" validate:"omitempty,len=1,dive,keys,eq=0,endkeys,gt=0"`
}

// Players returns players; ByID asks the server and fails with an
// APIError on a miss
func (c *Client) Players(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourcePlayers, q)
}

// AddPlayer creates a player. Names over 50 characters are shortened and
// the group defaults to 1.
func (c *Client) AddPlayer(ctx context.Context, in PlayerInput) (Record, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	in.Name = truncateName(in.Name, playerNameLimit)
	if in.Group == 0 {
		in.Group = defaultGroupID
	}
	return c.create(ctx, ResourcePlayers, in)
}

// EditPlayer merges upd into the current player and saves it
func (c *Client) EditPlayer(ctx context.Context, id string, upd PlayerUpdate) (Record, error) {
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	current, err := c.fetchExisting(ctx, ResourcePlayers, id)
	if err != nil {
		return nil, err
	}

	body := briefPlayer(current)
	if upd.Name != nil {
		body["name"] = *upd.Name
	}
	if upd.Description != nil {
		body["description"] = *upd.Description
	}
	if upd.Group != nil {
		body["group"] = *upd.Group
	}
	if upd.Platform != nil {
		body["platform"] = *upd.Platform
	}
	if upd.Playlists != nil {
		body["playlists"] = upd.Playlists
	}
	if upd.Audios != nil {
		body["audios"] = upd.Audios
	}
	if name, ok := body["name"].(string); ok {
		body["name"] = truncateName(name, playerNameLimit)
	}

	return c.update(ctx, ResourcePlayers, id, body)
}

// DeletePlayer removes a player after checking it exists
func (c *Client) DeletePlayer(ctx context.Context, id string) (bool, error) {
	return c.deleteExisting(ctx, ResourcePlayers, id)
}
