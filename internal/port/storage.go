package port

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the contract for the external content object store.
// Upload mechanics live in the frontend's direct-to-storage flow; the
// backend only presigns reads, stats objects, and deletes them.
type ObjectStorage interface {
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Head(ctx context.Context, key string) (sizeBytes int64, contentType string, err error)
	Delete(ctx context.Context, key string) error
}

// ObjectUploader pushes objects into the content store. User uploads go
// direct to storage from the frontend; this is only used by tooling that
// needs to place objects server-side, e.g. the demo-data seeder.
type ObjectUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
}
