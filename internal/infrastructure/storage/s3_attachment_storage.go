package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"billed_service/internal/infrastructure/database"
	"billed_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultAttachmentsBucket = "billed-receipts"

// ConnectS3 creates the S3 client used for receipt images.
//
// Supported env vars:
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566, forces path style)
//   - plus the shared AWS vars handled by database.NewAWSConfigFromEnv.
func ConnectS3() *s3.Client {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if ep := os.Getenv("S3_ENDPOINT"); ep != "" {
			o.BaseEndpoint = aws.String(ep)
			o.UsePathStyle = true
		}
	})
}

// S3AttachmentStorage stores receipt images in S3 and hands back the public
// URL the persisted bill carries as fileUrl.
//
// Env vars:
//   - ATTACHMENTS_BUCKET (default: billed-receipts)
//   - ATTACHMENTS_BASE_URL (optional; overrides the virtual-hosted URL, for
//     local setups where the bucket is served through another host)

type S3AttachmentStorage struct {
	s3c     *s3.Client
	bucket  string
	region  string
	baseURL string
}

var _ interfaces.IAttachmentStorage = (*S3AttachmentStorage)(nil)

func NewS3AttachmentStorage(s3c *s3.Client) *S3AttachmentStorage {
	return &S3AttachmentStorage{
		s3c:     s3c,
		bucket:  getenvDefault("ATTACHMENTS_BUCKET", defaultAttachmentsBucket),
		region:  getenvDefault("AWS_REGION", "us-east-1"),
		baseURL: os.Getenv("ATTACHMENTS_BASE_URL"),
	}
}

func (s *S3AttachmentStorage) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := s.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[attachments][storage] put failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *S3AttachmentStorage) objectURL(key string) string {
	if s.baseURL != "" {
		return strings.TrimRight(s.baseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
