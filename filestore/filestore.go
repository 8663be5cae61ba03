package filestore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// FileStore holds user attachment blobs. Upload returns the public
// location that gets stored on the owning row.
type FileStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds the user-scoped blob key `{owner_id}/{filename}`.
func ObjectKey(userID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s", userID, filename)
}

// KeyFromLocation recovers the blob key from a stored attachment URL.
func KeyFromLocation(location string) string {
	parsed, err := url.Parse(location)
	if err != nil {
		return strings.TrimPrefix(location, "/")
	}
	return strings.TrimPrefix(parsed.Path, "/")
}
