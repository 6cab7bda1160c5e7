package interfaces

import "context"

// IImageStorage stores an image blob and returns a public URL for it. Opaque
// to the lifecycle engines; used only for campaign image attachments.
type IImageStorage interface {
	Store(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
