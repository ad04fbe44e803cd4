// Package storage implements service.BlobStore on gocloud.dev portable buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"landmarket/config"
	"landmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// BucketParams holds the dependencies for opening the bucket.
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Module provides the bucket and the blob store.
var Module = fx.Options(
	fx.Provide(NewBucket, NewBlobStore),
)

// NewBucket opens the configured bucket URL and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return bucket.Close()
		},
	})

	return bucket, nil
}

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStore wraps bucket as a service.BlobStore.
func NewBlobStore(bucket *blob.Bucket, cfg *config.Config) service.BlobStore {
	var base string
	if cfg.Storage != nil {
		base = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	return &bucketStore{bucket: bucket, publicBaseURL: base}
}

func (s *bucketStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.URL(key), nil
}

func (s *bucketStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrBlobNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *bucketStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrBlobNotFound
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// DeletePrefix deletes every object whose key starts with prefix.
// Objects that disappear concurrently are not counted.
func (s *bucketStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	if prefix == "" {
		return 0, errors.New("refusing to delete an empty prefix")
	}

	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	deleted := 0
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return deleted, errors.Wrapf(err, "failed to list %s", prefix)
		}
		if obj.IsDir {
			continue
		}

		if err := s.Delete(ctx, obj.Key); err != nil {
			if errors.Is(err, service.ErrBlobNotFound) {
				continue
			}

			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}

// URL joins the public base with the escaped key segments.
func (s *bucketStore) URL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return s.publicBaseURL + "/" + strings.Join(segments, "/")
}
