package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "store-ops-backend/lib/file-storage"
	s3client "store-ops-backend/s3"
)

func InitS3(ctx context.Context) {
	err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client")
		return
	}

	if err = s3client.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("failed to ensure the S3 bucket exists")
	}

	filestorage.NewInstance(s3client.Client)
	log.Info("S3 client initialized")
}
