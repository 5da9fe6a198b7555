package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rbiomeds/newsdesk/internal/media/imagehost"
	"github.com/rbiomeds/newsdesk/internal/media/s3"
)

type Backend string

const (
	ImageHost Backend = "imagehost"
	S3        Backend = "s3"
)

type MediaConfig struct {
	Backend   Backend
	ImageHost *imagehost.ClientConfig
	S3        *s3.Config
}

// LoadEnv assembles the media-host configuration from environment variables.
// MEDIA_BACKEND selects the backend and defaults to the image host.
func LoadEnv() (*MediaConfig, error) {
	backend := Backend(os.Getenv("MEDIA_BACKEND"))
	if backend == "" {
		backend = ImageHost
	}

	switch backend {
	case ImageHost:
		cfg := &imagehost.ClientConfig{
			BaseURL:   os.Getenv("IMAGEHOST_URL"),
			CloudName: os.Getenv("IMAGEHOST_CLOUD_NAME"),
			APIKey:    os.Getenv("IMAGEHOST_API_KEY"),
			APISecret: os.Getenv("IMAGEHOST_API_SECRET"),
		}
		if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
			slog.Error("Image host configuration is incomplete")
			return nil, fmt.Errorf("image host configuration is incomplete: cloud name, api key and api secret are required")
		}
		return &MediaConfig{Backend: backend, ImageHost: cfg}, nil

	case S3:
		cfg := &s3.Config{
			Region:       os.Getenv("AWS_REGION"),
			Bucket:       os.Getenv("S3_BUCKET"),
			Profile:      os.Getenv("AWS_PROFILE"),
			UsePathStyle: os.Getenv("S3_USE_PATH_STYLE") == "true",
		}
		if cfg.Bucket == "" {
			slog.Error("S3 bucket is not set")
			return nil, fmt.Errorf("S3 bucket is not set")
		}
		return &MediaConfig{Backend: backend, S3: cfg}, nil

	default:
		return nil, fmt.Errorf("invalid MEDIA_BACKEND value: %s, expected one of %v", backend, []Backend{ImageHost, S3})
	}
}
