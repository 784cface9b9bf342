package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig describes the bucket documents are uploaded to.
type MinioConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"access_key" yaml:"access_key"`
	SecretKey string `json:"secret_key" yaml:"secret_key"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	UseSSL    bool   `json:"use_ssl,omitempty" yaml:"use_ssl,omitempty"`
	// Prefix is prepended to every object key, e.g. "cv/".
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// objectClient is the subset of the MinIO client the store uses.
type objectClient interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket, location string) error
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// MinioStore uploads documents to an S3-compatible bucket.
type MinioStore struct {
	client objectClient
	bucket string
	prefix string
}

var _ Store = (*MinioStore)(nil)

// NewMinioStore connects to the endpoint and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, &Error{Message: "minio endpoint and bucket are required"}
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, &Error{Message: "failed to create minio client", Cause: err}
	}
	return newMinioStore(ctx, &minioClient{client: client}, cfg)
}

func newMinioStore(ctx context.Context, client objectClient, cfg MinioConfig) (*MinioStore, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, &Error{Key: cfg.Bucket, Message: "failed to check bucket", Cause: err}
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, cfg.Location); err != nil {
			return nil, &Error{Key: cfg.Bucket, Message: "failed to create bucket", Cause: err}
		}
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Put uploads the reader and returns "bucket/key".
func (s *MinioStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	object, err := s.objectKey(key)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.client.PutObject(ctx, s.bucket, object, r, size, contentType); err != nil {
		return "", &Error{Key: object, Message: "failed to upload object", Cause: err}
	}
	return fmt.Sprintf("%s/%s", s.bucket, object), nil
}

// Get downloads the object stored under key.
func (s *MinioStore) Get(ctx context.Context, key string) ([]byte, error) {
	object, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}
	data, err := s.client.GetObject(ctx, s.bucket, object)
	if err != nil {
		return nil, &Error{Key: object, Message: "failed to download object", Cause: err}
	}
	return data, nil
}

// PresignedURL returns a time-limited download link for key.
func (s *MinioStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	object, err := s.objectKey(key)
	if err != nil {
		return "", err
	}
	url, err := s.client.PresignedGetObject(ctx, s.bucket, object, expiry)
	if err != nil {
		return "", &Error{Key: object, Message: "failed to presign object", Cause: err}
	}
	return url, nil
}

func (s *MinioStore) objectKey(key string) (string, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return s.prefix + clean, nil
}

// minioClient adapts *minio.Client to objectClient.
type minioClient struct {
	client *minio.Client
}

func (m *minioClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return m.client.BucketExists(ctx, bucket)
}

func (m *minioClient) MakeBucket(ctx context.Context, bucket, location string) error {
	return m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: location})
}

func (m *minioClient) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (m *minioClient) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (m *minioClient) PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
