package factory

import (
	"context"
	"fmt"

	"github.com/rbiomeds/newsdesk/internal/media"
	"github.com/rbiomeds/newsdesk/internal/media/imagehost"
	"github.com/rbiomeds/newsdesk/internal/media/s3"
)

// NewGateway creates the upload gateway around the configured backend.
func NewGateway(ctx context.Context, cfg MediaConfig) (*media.Gateway, error) {
	switch cfg.Backend {
	case ImageHost:
		if cfg.ImageHost == nil {
			return nil, fmt.Errorf("missing image host configuration")
		}
		client, err := imagehost.NewClient(*cfg.ImageHost)
		if err != nil {
			return nil, fmt.Errorf("failed to create image host client: %w", err)
		}
		return media.NewGateway(client), nil

	case S3:
		if cfg.S3 == nil {
			return nil, fmt.Errorf("missing S3 configuration")
		}
		uploader, err := s3.NewUploader(ctx, *cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 uploader: %w", err)
		}
		return media.NewGateway(uploader), nil

	default:
		return nil, fmt.Errorf("unsupported media backend: %s", cfg.Backend)
	}
}
