package fouryousee

import (
	"context"
	"fmt"
)

// Category update flows
const (
	UpdateFlowReplace = 1
	UpdateFlowAppend  = 2
)

// CategoryInput describes a media category to create
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Parent      int    `json:"parent,omitempty" validate:"gte=0"`
	AutoShuffle *bool  `json:"autoShuffle,omitempty"`
	UpdateFlow  int    `json:"updateFlow,omitempty" validate:"omitempty,oneof=1 2"`
	Sequence    []int  `json:"sequence,omitempty"`
}

// CategoryUpdate holds the category fields to change. Only the non-nil
// fields are sent.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Parent      *int    `json:"parent,omitempty" validate:"omitempty,gte=0"`
	AutoShuffle *bool   `json:"autoShuffle,omitempty"`
	UpdateFlow  *int    `json:"updateFlow,omitempty" validate:"omitempty,oneof=1 2"`
	Sequence    []int   `json:"sequence,omitempty"`
}

func (u CategoryUpdate) fields() Record {
	body := Record{}
	if u.Name != nil {
		body["name"] = *u.Name
	}
	if u.Description != nil {
		body["description"] = *u.Description
	}
	if u.Parent != nil {
		body["parent"] = *u.Parent
	}
	if u.AutoShuffle != nil {
		body["autoShuffle"] = *u.AutoShuffle
	}
	if u.UpdateFlow != nil {
		body["updateFlow"] = *u.UpdateFlow
	}
	if u.Sequence != nil {
		body["sequence"] = u.Sequence
	}
	return body
}

// MediaCategories returns media categories; ByID asks the server and
// fails with an APIError on a miss
func (c *Client) MediaCategories(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceMediaCategories, q)
}

// AddMediaCategory creates a media category
func (c *Client) AddMediaCategory(ctx context.Context, in CategoryInput) (Record, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return c.create(ctx, ResourceMediaCategories, in)
}

// EditCategory sends only the fields set in upd. The category is not
// fetched first.
func (c *Client) EditCategory(ctx context.Context, id string, upd CategoryUpdate) (Record, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Tag: "required", Message: "missing ID of the Media category", Err: ErrMissingID}
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	body := upd.fields()
	if len(body) == 0 {
		return nil, &ValidationError{Field: "fields", Tag: "required", Message: ErrEmptyUpdate.Error(), Err: ErrEmptyUpdate}
	}

	return c.update(ctx, ResourceMediaCategories, id, body)
}

// EditCategoriesBulk updates several categories in one request. Each item
// must be a category object carrying its id.
func (c *Client) EditCategoriesBulk(ctx context.Context, items ...Record) (Record, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Field: "carouselItems", Tag: "required", Message: "missing 'carouselItems' field"}
	}
	for i, item := range items {
		if item == nil {
			return nil, &ValidationError{
				Field:   "carouselItems",
				Tag:     "object",
				Message: fmt.Sprintf("invalid carouselItems field, item %d is not an object", i),
			}
		}
		if item.ID() == "" {
			return nil, &ValidationError{
				Field:   "carouselItems",
				Tag:     "required",
				Message: fmt.Sprintf("invalid carouselItems field, item %d has no id", i),
				Err:     ErrMissingID,
			}
		}
	}

	return c.update(ctx, ResourceMediaCategories, "bulk", Record{"carouselItems": items})
}
