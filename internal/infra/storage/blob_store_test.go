package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobImageStore(bucket, "https://cdn.example.com/", "products", slog.New(slog.NewTextHandler(io.Discard, nil)))

	img, err := store.Upload(ctx, "Rose.JPG", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Regexp(t, `^products/[0-9a-f-]{36}\.jpg$`, img.Key)
	assert.Equal(t, "https://cdn.example.com/"+img.Key, img.URL)

	data, err := bucket.ReadAll(ctx, img.Key)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	attrs, err := bucket.Attributes(ctx, img.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, img.Key))
	exists, err := bucket.Exists(ctx, img.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, img.Key), "deleting twice is fine")
}
