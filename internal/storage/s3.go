package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/fproduction/studio-backend/config"
)

const presignExpiry = 15 * time.Minute

// UploadRequest describes one file the client wants to upload directly to S3.
type UploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize"`
}

// PresignedUpload is a minted PUT URL plus the key the client must report back.
type PresignedUpload struct {
	PresignedURL string `json:"presignedUrl"`
	S3Key        string `json:"s3Key"`
}

// ObjectStore is the slice of the object-storage service the handlers use.
type ObjectStore interface {
	PresignUpload(ctx context.Context, req UploadRequest) (PresignedUpload, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type s3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
	cdn     string
}

// NewS3Store builds an ObjectStore backed by AWS S3, serving public URLs
// through CloudFront when a distribution domain is configured.
func NewS3Store(ctx context.Context, cfg *config.Config) (ObjectStore, error) {
	if cfg.S3Bucket == "" || cfg.AWSRegion == "" {
		return nil, errors.New("missing AWS_S3_BUCKET or AWS_REGION")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &s3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		region:  cfg.AWSRegion,
		cdn:     strings.TrimSuffix(cfg.CloudFrontDomain, "/"),
	}, nil
}

func (s *s3Store) PresignUpload(ctx context.Context, req UploadRequest) (PresignedUpload, error) {
	key := GenerateKey(req.Filename)

	out, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(req.ContentType),
		ContentLength: aws.Int64(req.FileSize),
		Metadata: map[string]string{
			"original-name": url.QueryEscape(req.Filename),
			"uploaded-at":   time.Now().UTC().Format(time.RFC3339),
		},
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return PresignedUpload{}, fmt.Errorf("presign upload for %q: %w", req.Filename, err)
	}

	return PresignedUpload{PresignedURL: out.URL, S3Key: key}, nil
}

func (s *s3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *s3Store) PublicURL(key string) string {
	return PublicURL(s.cdn, s.bucket, s.region, key)
}

// PublicURL prefers the CDN domain and falls back to the S3 endpoint.
func PublicURL(cdnDomain, bucket, region, key string) string {
	if cdnDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(cdnDomain, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
