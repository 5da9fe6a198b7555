// Package media forwards uploaded image binaries to an external media host
// and hands back durable public URLs. Nothing is persisted here; callers
// attach the returned URL to an article themselves.
package media

import (
	"context"

	"github.com/rbiomeds/newsdesk/internal/apperr"
)

// MaxUploadBytes caps a single upload at 5 MiB. Larger payloads are
// rejected before anything is sent to the media host.
const MaxUploadBytes int64 = 5 << 20

// Folder is the fixed storage folder on the media host.
const Folder = "articles"

// Uploader forwards file bytes to a media host and returns the durable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Gateway wraps an upload backend with the input checks every backend
// shares. One file per call, no retries.
type Gateway struct {
	backend Uploader
}

func NewGateway(backend Uploader) *Gateway {
	return &Gateway{backend: backend}
}

func (g *Gateway) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", apperr.NewMissingFile("image")
	}
	if int64(len(data)) > MaxUploadBytes {
		return "", &apperr.PayloadTooLargeError{Size: int64(len(data)), Limit: MaxUploadBytes}
	}

	url, err := g.backend.Upload(ctx, data, mimeType)
	if err != nil {
		return "", apperr.NewUpload(err)
	}
	return url, nil
}
