package storage

import (
	"context"
	"strings"
	"testing"

	"landmarket/config"
	"landmarket/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) service.BlobStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{Storage: &config.StorageConfig{PublicBaseURL: "https://cdn.example.com/files/"}}

	return NewBlobStore(bucket, cfg)
}

func TestBlobStore_UploadAndRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "listings/seller-1/1-plot photo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/listings/seller-1/1-plot%20photo.jpg", url)

	data, err := store.Read(ctx, "listings/seller-1/1-plot photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestBlobStore_MissingKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Read(ctx, "nope")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)

	err = store.Delete(ctx, "nope")
	assert.ErrorIs(t, err, service.ErrBlobNotFound)
}

func TestBlobStore_DeletePrefix(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{
		"evidence/seller-1/listing-1/deed.pdf",
		"evidence/seller-1/listing-1/map.png",
		"evidence/seller-1/listing-2/deed.pdf",
	} {
		_, err := store.Upload(ctx, key, "application/octet-stream", strings.NewReader("x"))
		require.NoError(t, err)
	}

	deleted, err := store.DeletePrefix(ctx, "evidence/seller-1/listing-1/")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = store.Read(ctx, "evidence/seller-1/listing-2/deed.pdf")
	assert.NoError(t, err)

	deleted, err = store.DeletePrefix(ctx, "evidence/seller-1/listing-1/")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = store.DeletePrefix(ctx, "")
	assert.Error(t, err)
}
