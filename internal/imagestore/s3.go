package imagestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds the connection settings for S3-compatible storage.
// Endpoint is optional: set it for DO Spaces, R2 and friends.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

// Store uploads ad photos and hands back the URL that goes into the
// ad's images list.
type Store struct {
	client *s3.Client
	cfg    Config
	logger *zap.SugaredLogger
}

func NewStore(ctx context.Context, cfg Config, logger *zap.SugaredLogger) (*Store, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx,
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &Store{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Upload stores one image under a fresh key and returns its public URL.
// The original filename only contributes its extension.
func (s *Store) Upload(ctx context.Context, filename string, data io.Reader, contentType string) (string, error) {
	key := "ads/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Errorf("Failed to upload image %s: %v", key, err)
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *Store) publicURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		host := strings.TrimPrefix(s.cfg.Endpoint, "https://")
		return fmt.Sprintf("https://%s.%s/%s", s.cfg.Bucket, host, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
