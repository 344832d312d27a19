package fouryousee

import (
	"context"
	"fmt"
)

// uploadField is the multipart field the uploads endpoint reads
const uploadField = "media"

// Uploads returns the uploaded files. The API cannot look uploads up by id,
// so ByID filters the full listing and yields an empty Result on a miss.
func (c *Client) Uploads(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceUploads, q)
}

// UploadFiles sends each local file to the uploads endpoint, one request
// per file, and returns the upload records in input order. Every path is
// checked before the first request.
func (c *Client) UploadFiles(ctx context.Context, paths ...string) ([]Record, error) {
	if len(paths) == 0 {
		return nil, &ValidationError{Field: "files", Tag: "required", Message: "missing 'files' field"}
	}

	files := make([]uploadFile, 0, len(paths))
	for _, path := range paths {
		file, err := resolveUpload(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	uploads := make([]Record, 0, len(files))
	for _, file := range files {
		rec, err := c.createMultipart(ctx, ResourceUploads, uploadField, file, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", file.path, err)
		}

		c.logger.Debug().
			Str("file", file.path).
			Str("mime_type", file.mimeType).
			Str("upload_id", rec.ID()).
			Msg("Uploaded file to 4YouSee")
		uploads = append(uploads, rec)
	}

	return uploads, nil
}

// DeleteUpload removes an upload after checking it exists
func (c *Client) DeleteUpload(ctx context.Context, id string) (bool, error) {
	return c.deleteExisting(ctx, ResourceUploads, id)
}
