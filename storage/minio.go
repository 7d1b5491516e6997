package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
}

type MinioImageStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioImageStore connects to MinIO and creates the bucket when missing.
func NewMinioImageStore(ctx context.Context, cfg MinioConfig) (*MinioImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioImageStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *MinioImageStore) objectURL(name string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, url.PathEscape(name))
}

func (s *MinioImageStore) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.objectURL(name), nil
}

func (s *MinioImageStore) List(ctx context.Context) ([]string, error) {
	return collectURLs(ctx, func(ctx context.Context) <-chan minio.ObjectInfo {
		return s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true})
	}, s.objectURL)
}

// collectURLs drains a listing. The listing context is cancelled on return so
// the producer goroutine stops when an object error ends the loop early.
func collectURLs(ctx context.Context, list func(context.Context) <-chan minio.ObjectInfo, url func(string) string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	urls := make([]string, 0)
	for obj := range list(ctx) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		urls = append(urls, url(obj.Key))
	}
	return urls, nil
}
