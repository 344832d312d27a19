package fouryousee

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const (
	mimeZip           = "application/zip"
	mimeZipCompressed = "application/x-zip-compressed"
	mimeMP4           = "video/mp4"
	mimeJPEG          = "image/jpeg"
	mimePNG           = "image/png"
)

// resolveUpload checks that path is a regular local file and detects its
// MIME type from its content
func resolveUpload(path string) (uploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return uploadFile{}, &ValidationError{Field: "file", Tag: "exists", Message: fmt.Sprintf("file %s not found", path), Err: err}
		}
		return uploadFile{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return uploadFile{}, &ValidationError{Field: "file", Tag: "file", Message: fmt.Sprintf("%s is a directory, not a file", path)}
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return uploadFile{}, fmt.Errorf("failed to detect type of %s: %w", path, err)
	}

	return uploadFile{
		path:     path,
		name:     filepath.Base(path),
		mimeType: normalizeMIME(mt.String()),
	}, nil
}

// normalizeMIME drops parameters such as charset and maps the legacy
// Windows zip type to the canonical one
func normalizeMIME(mimeType string) string {
	if base, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = base
	}
	if mimeType == mimeZipCompressed {
		return mimeZip
	}
	return mimeType
}
