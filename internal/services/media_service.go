package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/salmanrf/movies-api/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const presignExpiry = 15 * time.Minute

// MediaService hands out presigned upload URLs for movie posters and
// watchable assets. The object store is the system of record for the
// files themselves; movies only hold the resulting public URL in
// watch_url.
type MediaService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMediaService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MediaService, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
	}).Info("MinIO client initialized")

	service := &MediaService{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, continuing")
	}

	return service, nil
}

func (s *MediaService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	return s.client.SetBucketPolicy(ctx, s.bucket, policy)
}

// PresignUpload returns a short-lived PUT URL for the given filename
// plus the public URL the object will be served from. Filenames are
// suffixed with a random fragment so repeated uploads never clobber
// each other.
func (s *MediaService) PresignUpload(ctx context.Context, filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	objectPath := fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)

	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"object": objectPath,
		"expiry": presignExpiry,
	}).Info("Generated presigned upload URL")

	return presigned.String(), s.publicURL + "/" + objectPath, nil
}

// RemoveObject deletes an uploaded object, accepting either a bare
// object path or a full public URL.
func (s *MediaService) RemoveObject(ctx context.Context, objectPath string) error {
	if strings.Contains(objectPath, "://") {
		parts := strings.Split(objectPath, "/")
		objectPath = parts[len(parts)-1]
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", objectPath).Error("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}
