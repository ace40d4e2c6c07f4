package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PhotoStore keeps unit photos in an S3-compatible bucket (R2 works).
// The API hands out presigned PUT URLs, uploads never pass through the
// backend.
type PhotoStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

type PhotoStoreConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type PresignedUpload struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Expiry int64  `json:"expires_in_seconds"`
}

func NewPhotoStore(ctx context.Context, c PhotoStoreConfig) (*PhotoStore, error) {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return nil, fmt.Errorf("photo storage not configured")
	}

	region := c.Region
	if region == "" {
		region = "auto"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey,
			c.SecretKey,
			"",
		)),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure S3 client: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	})

	return &PhotoStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    c.Bucket,
	}, nil
}

const uploadExpiry = 15 * time.Minute

// PresignUpload returns a presigned PUT URL for a new photo of a unit.
func (p *PhotoStore) PresignUpload(ctx context.Context, unitID uuid.UUID, contentType string) (*PresignedUpload, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("content type %q is not an image", contentType)
	}

	key := fmt.Sprintf("units/%s/%s", unitID, uuid.New())

	req, err := p.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &PresignedUpload{
		URL:    req.URL,
		Key:    key,
		Expiry: int64(uploadExpiry.Seconds()),
	}, nil
}

// ListPhotos returns presigned GET URLs for all photos of a unit.
func (p *PhotoStore) ListPhotos(ctx context.Context, unitID uuid.UUID) ([]string, error) {
	result, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(fmt.Sprintf("units/%s/", unitID)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	urls := make([]string, 0, len(result.Contents))
	for _, obj := range result.Contents {
		req, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    obj.Key,
		}, s3.WithPresignExpires(time.Hour))
		if err != nil {
			return nil, err
		}
		urls = append(urls, req.URL)
	}
	return urls, nil
}
