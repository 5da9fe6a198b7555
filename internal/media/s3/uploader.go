// Package s3 stores uploaded images in an S3 bucket and derives the public
// object URL from bucket and region.
package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/rbiomeds/newsdesk/internal/media"
)

type Config struct {
	// Region to use for requests, e.g. "us-east-1". If empty, AWS defaults apply.
	Region string
	// Bucket receiving the uploads.
	Bucket string
	// Profile selects a named shared config/credentials profile. If empty, default chain applies.
	Profile string
	// UsePathStyle forces path-style addressing (useful for S3-compatible providers).
	UsePathStyle bool
}

// Uploader wraps the AWS SDK v2 S3 client behind the media.Uploader contract.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	region := cfg.Region
	if region == "" {
		region = awsCfg.Region
	}

	return &Uploader{client: c, bucket: cfg.Bucket, region: region}, nil
}

func (u *Uploader) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	key := fmt.Sprintf("%s/%s%s", media.Folder, uuid.New().String(), extension(mimeType))

	in := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if mimeType != "" {
		in.ContentType = aws.String(mimeType)
	}

	if _, err := u.client.PutObject(ctx, in); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func extension(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
