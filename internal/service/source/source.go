package source

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/stock-ahora/etl-mermas/internal/config_lib"
	"github.com/stock-ahora/etl-mermas/internal/logger"
)

const s3Prefix = "s3://"

// Service resuelve la ruta del archivo de origen: las rutas s3://bucket/key
// se descargan a un temporal, las locales se usan tal cual.
type Service struct {
	region string
	log    *logger.Logger
}

func New(region string, log *logger.Logger) *Service {
	return &Service{region: region, log: log}
}

// Fetch returns a local path for raw plus a cleanup func for any temp file.
func (s *Service) Fetch(ctx context.Context, raw string) (string, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(raw, s3Prefix) {
		if _, err := os.Stat(raw); err != nil {
			return "", noop, fmt.Errorf("archivo de origen: %w", err)
		}
		return raw, noop, nil
	}

	bucket, key, err := splitS3URL(raw)
	if err != nil {
		return "", noop, err
	}

	_, downloader, err := config_lib.NewS3Client(ctx, s.region)
	if err != nil {
		return "", noop, err
	}

	tmp, err := os.CreateTemp("", "mermas-*"+path.Ext(key))
	if err != nil {
		return "", noop, fmt.Errorf("creando temporal: %w", err)
	}
	cleanup := func() { os.Remove(tmp.Name()) }

	s.log.Infow("descargando origen desde S3", "bucket", bucket, "key", key)
	n, err := downloader.Download(ctx, tmp, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		cleanup()
		return "", noop, fmt.Errorf("descargando %s: %w", raw, err)
	}
	s.log.Infow("origen descargado", "bytes", n, "path", tmp.Name())

	return tmp.Name(), cleanup, nil
}

func splitS3URL(raw string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(raw, s3Prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("URL S3 inválida: %q", raw)
	}
	return parts[0], parts[1], nil
}
