package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ObjectStore is the upload collaborator boundary. The backend never handles
// file bytes itself: clients upload directly against a presigned URL and then
// report completion, and deleting a gallery record removes the stored object.
type ObjectStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// S3ObjectStore backs the gallery with an S3 bucket.
type S3ObjectStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	presignTTL    time.Duration
	logger        zerolog.Logger
}

func NewS3ObjectStore(ctx context.Context, bucket string, presignTTL time.Duration) (*S3ObjectStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	return &S3ObjectStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        bucket,
		presignTTL:    presignTTL,
		logger:        log.With().Str("serviceName", "s3ObjectStore").Logger(),
	}, nil
}

// PresignUpload returns a URL a client can PUT the file to directly.
func (s *S3ObjectStore) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", fmt.Errorf("presigning upload for %q: %w", key, err)
	}

	s.logger.Info().Str("key", key).Msg("Presigned upload URL issued")
	return req.URL, nil
}

// Delete removes the stored object. S3 treats deleting a missing key as
// success, which matches the idempotent delete semantics of the gallery.
func (s *S3ObjectStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting object %q: %w", key, err)
	}
	return nil
}

// NewObjectKey builds a collision-free storage key for an upload, keeping the
// original extension so the object is served with a sensible name.
func NewObjectKey(filename string) string {
	return fmt.Sprintf("uploads/%s%s", uuid.New().String(), path.Ext(filename))
}
