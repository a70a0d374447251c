// Package assets stores product images in object storage and hands back the
// public URLs the catalog serves to visitors.
package assets

import (
	"context"
	"io"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, fileName, contentType string, reader io.Reader, size int64) (string, error)
}
