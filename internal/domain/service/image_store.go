package service

import "context"

// StoredImage is an uploaded object and its public URL.
type StoredImage struct {
	Key string
	URL string
}

// ImageStore is the CDN bucket holding product images.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*StoredImage, error)
	Delete(ctx context.Context, key string) error
}
