package fouryousee

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// MediaInput describes a media to create from a local file
type MediaInput struct {
	// File is the local path of a video/mp4, image/jpeg, image/png or zip
	File        string `json:"file" validate:"required"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Categories  []int  `json:"categories" validate:"required,min=1,dive,gt=0"`
	// Duration in seconds; required for images and zip packages
	Duration int    `json:"duration,omitempty" validate:"gte=0"`
	Schedule Record `json:"schedule,omitempty"`
}

// MediaUpdate holds the media fields to change; nil fields keep their
// current value
type MediaUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Categories  []int   `json:"categories,omitempty" validate:"omitempty,min=1,dive,gt=0"`
	Schedule    Record  `json:"schedule,omitempty"`
}

type mediaPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	File        Record `json:"file"`
	Categories  []int  `json:"categories"`
	Duration    int    `json:"duration,omitempty"`
	Schedule    Record `json:"schedule,omitempty"`
}

// Medias returns media records. Filters such as name, categoryId and
// metadata are applied by the server, also alongside an id as in
// Filter{"id": "1", "metadata": "true"}. ByID fails with an APIError when
// the media does not exist.
func (c *Client) Medias(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceMedias, q)
}

// AddMedia uploads the file and creates a media pointing at the upload.
// The name defaults to the file name without extension.
func (c *Client) AddMedia(ctx context.Context, in MediaInput) (Record, error) {
	file, err := validateMedia(in)
	if err != nil {
		return nil, err
	}

	name := in.Name
	if name == "" {
		name = strings.TrimSuffix(file.name, filepath.Ext(file.name))
	}

	upload, err := c.createMultipart(ctx, ResourceUploads, uploadField, file, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", in.File, err)
	}

	return c.create(ctx, ResourceMedias, mediaPayload{
		Name:        name,
		Description: in.Description,
		File:        upload,
		Categories:  in.Categories,
		Duration:    in.Duration,
		Schedule:    in.Schedule,
	})
}

// EditMedia merges upd into the current media and saves it
func (c *Client) EditMedia(ctx context.Context, id string, upd MediaUpdate) (Record, error) {
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	current, err := c.fetchExisting(ctx, ResourceMedias, id)
	if err != nil {
		return nil, err
	}

	body := briefMedia(current)
	if upd.Name != nil {
		body["name"] = *upd.Name
	}
	if upd.Description != nil {
		body["description"] = *upd.Description
	}
	if upd.Duration != nil {
		body["duration"] = *upd.Duration
	}
	if upd.Categories != nil {
		body["categories"] = upd.Categories
	}
	if upd.Schedule != nil {
		body["schedule"] = upd.Schedule
	}

	return c.update(ctx, ResourceMedias, id, body)
}

// DeleteMedia removes a media after checking it exists
func (c *Client) DeleteMedia(ctx context.Context, id string) (bool, error) {
	return c.deleteExisting(ctx, ResourceMedias, id)
}
