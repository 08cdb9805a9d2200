// Package storage keeps product images in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets and S3-compatible CDNs
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// blobImageStore implements service.ImageStore.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	keyPrefix     string
	logger        *slog.Logger
}

// Params holds the fx dependencies of the image store.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens storage.bucketUrl and closes it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("storage.bucketUrl not set, product images are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobImageStore(bucket, cfg.PublicBaseURL, cfg.KeyPrefix, params.Logger), nil
}

// NewBlobImageStore wraps an already opened bucket.
func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL, keyPrefix string, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		keyPrefix:     strings.Trim(keyPrefix, "/"),
		logger:        logger,
	}
}

// Upload writes data under a fresh key that keeps the original extension.
func (s *blobImageStore) Upload(ctx context.Context, filename, contentType string, data []byte) (*service.StoredImage, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to upload %s", filename)
	}

	s.logger.DebugContext(ctx, "Image uploaded", slog.String("key", key), slog.Int("bytes", len(data)))

	return &service.StoredImage{Key: key, URL: s.publicURL(key)}, nil
}

// Delete removes an object. A missing object is not an error.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobImageStore) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}
