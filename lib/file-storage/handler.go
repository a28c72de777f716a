package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"
	"store-ops-backend/config"
)

// presignExpiry is how long generated download links stay valid.
const presignExpiry = 7 * 24 * time.Hour

type Provider interface {
	Upload(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) (fileURL string, err error)
	ResolveURL(ctx context.Context, key string) (fileURL string, err error)
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys []string)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Upload(ctx context.Context, key string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return i.ResolveURL(ctx, key)
}

// ResolveURL builds a download link for a stored object. Buckets exposed
// through a public endpoint get a plain path URL, private ones a presigned
// link.
func (i impl) ResolveURL(ctx context.Context, key string) (string, error) {
	if config.Conf.S3.PublicURL != nil && *config.Conf.S3.PublicURL {
		scheme := "http"
		if *config.Conf.S3.UseSSL {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s/%s/%s", scheme, config.Conf.S3.Endpoint, config.Conf.S3.BucketName, key), nil
	}
	presigned, err := i.s3client.PresignedGetObject(ctx, config.Conf.S3.BucketName, key, presignExpiry, url.Values{})
	if err != nil {
		return "", err
	}
	return presigned.String(), nil
}

func (i impl) Delete(ctx context.Context, key string) error {
	return i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, key, minio.RemoveObjectOptions{})
}

// DeleteMany is best effort cleanup, failures are logged and skipped.
func (i impl) DeleteMany(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := i.Delete(ctx, key); err != nil {
			log.
				WithError(err).
				WithField("object_key", key).
				Error("failed to delete stored file")
		}
	}
}
