package config_lib

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client arma el cliente S3 y un downloader para traer archivos de
// origen al disco local.
func NewS3Client(ctx context.Context, region string) (*s3.Client, *manager.Downloader, error) {
	loadOpts := []func(*config.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo cargar config AWS: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return client, manager.NewDownloader(client), nil
}
