package interfaces

import (
	"context"
	"io"
)

// IAttachmentStorage abstracts receipt-image storage (S3 in production).
//
// Put stores the object under key and returns the public URL the stored
// bill will carry as fileUrl.
type IAttachmentStorage interface {
	Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
