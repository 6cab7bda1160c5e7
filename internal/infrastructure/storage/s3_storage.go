package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// S3ImageStorage stores campaign images in an S3 bucket and returns the
// public object URL.
type S3ImageStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
	log     *zap.Logger
}

var _ interfaces.IImageStorage = (*S3ImageStorage)(nil)

// NewS3ImageStorage wires an image store on the given bucket. baseURL
// overrides the default virtual-hosted URL, for CDN fronting or local stacks.
func NewS3ImageStorage(cfg aws.Config, bucket, baseURL string, log *zap.Logger) *S3ImageStorage {
	if log == nil {
		log = zap.NewNop()
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
	}
	return &S3ImageStorage{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (s *S3ImageStorage) Store(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := "campaigns/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	s.log.Info("campaign image stored", zap.String("key", key), zap.Int("bytes", len(data)))
	return s.baseURL + "/" + key, nil
}
