package fouryousee

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// create posts payload as JSON to the resource's create endpoint
func (c *Client) create(ctx context.Context, res Resource, payload any) (Record, error) {
	return c.sendJSON(ctx, http.MethodPost, res, policies[res].createPath, payload)
}

// update replaces the record id of res with payload
func (c *Client) update(ctx context.Context, res Resource, id string, payload any) (Record, error) {
	return c.sendJSON(ctx, http.MethodPut, res, string(res)+"/"+url.PathEscape(id), payload)
}

// remove deletes the record id of res
func (c *Client) remove(ctx context.Context, res Resource, id string) (bool, error) {
	c.cache.invalidate(res)
	if _, err := c.doRequest(ctx, http.MethodDelete, string(res)+"/"+url.PathEscape(id), nil, nil, contentTypeJSON); err != nil {
		return false, err
	}

	c.logger.Info().Str("resource", string(res)).Str("id", id).Msg("Deleted record")
	return true, nil
}

func (c *Client) sendJSON(ctx context.Context, method string, res Resource, endpoint string, payload any) (Record, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", res.Label(), err)
	}

	c.cache.invalidate(res)
	data, err := c.doRequest(ctx, method, endpoint, nil, bytes.NewReader(body), contentTypeJSON)
	if err != nil {
		return nil, err
	}
	return decodeRecord(data)
}

// uploadFile is a local file checked for existence with its MIME type
// resolved
type uploadFile struct {
	path     string
	name     string
	mimeType string
}

// createMultipart posts file as the multipart part field, together with
// the plain form fields
func (c *Client) createMultipart(ctx context.Context, res Resource, field string, file uploadFile, fields map[string]string) (Record, error) {
	f, err := os.Open(file.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(field), escapeQuotes(file.name)))
	header.Set("Content-Type", file.mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	c.cache.invalidate(res)
	data, err := c.doRequest(ctx, http.MethodPost, policies[res].createPath, nil, &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	return decodeRecord(data)
}

func decodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return rec, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
