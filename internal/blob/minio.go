package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mkarpushin/photoshare/internal/logger"
)

// Config holds connection parameters for the object storage backend.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// BaseURL is the public URL prefix under which stored objects are served.
	BaseURL string
}

// Store persists uploaded images in an S3-compatible bucket. Objects are
// keyed by a generated collision-resistant name, not by content.
type Store struct {
	cl      *minio.Client
	bucket  string
	baseURL string
}

// New connects to the object storage backend and ensures the bucket exists.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := cl.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cl.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &Store{
		cl:      cl,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Put uploads the stream under a generated key and returns the public URL
// of the stored object.
func (s *Store) Put(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error) {
	key := ObjectKey(filename)

	_, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	logger.Log.Infow("blob put",
		"bucket", s.bucket,
		"key", key,
		"size", size,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key), nil
}

// ObjectKey builds a collision-resistant object name from the upload
// timestamp plus a random suffix, keeping the original file extension.
func ObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("photos/%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}
