package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/campus-kit/lostfound-service/internal/config"
)

// ImageResolver turns an uploaded image's storage key into a durable
// URL. Resolution happens once, at item creation time.
type ImageResolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}

// S3Resolver resolves keys against an S3 bucket. When a public prefix
// is configured the URL is composed directly; otherwise a presigned GET
// URL is issued.
type S3Resolver struct {
	cfg     config.StorageConfig
	presign *s3.PresignClient
	logger  *zap.Logger
	urlTTL  time.Duration
}

// NewS3Resolver builds a resolver from the ambient AWS configuration.
// Returns nil (no resolver) when no bucket is configured.
func NewS3Resolver(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*S3Resolver, error) {
	if cfg.Bucket == "" {
		logger.Warn("STORAGE_S3_BUCKET not provided; image references will not be resolved")
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	ttl := time.Duration(cfg.URLTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &S3Resolver{
		cfg:     cfg,
		presign: s3.NewPresignClient(client),
		logger:  logger,
		urlTTL:  ttl,
	}, nil
}

// ResolveURL returns a durable URL for the stored object.
func (r *S3Resolver) ResolveURL(ctx context.Context, key string) (string, error) {
	if r.cfg.PublicPrefix != "" {
		return strings.TrimSuffix(r.cfg.PublicPrefix, "/") + "/" + key, nil
	}

	req, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(r.urlTTL))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}
