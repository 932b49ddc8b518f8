package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	internalConfig "github.com/rockparade/backend/internal/config"
)

type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(cfg *internalConfig.Config) (*S3Storage, error) {
	options := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			"",
		)),
		config.WithRegion(cfg.Storage.Region),
	}

	// Custom endpoint allows S3-compatible stores (R2, minio)
	if cfg.Storage.Endpoint != "" {
		endpoint := cfg.Storage.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint}, nil
			})
		options = append(options, config.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := config.LoadDefaultConfig(context.TODO(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Storage.Bucket,
	}, nil
}

func (s *S3Storage) Upload(key string, reader io.Reader) error {
	buf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read image content: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(int64(len(buf))),
	}

	if _, err := s.client.PutObject(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	return nil
}

func (s *S3Storage) Download(key string) ([]byte, error) {
	output, err := s.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer output.Body.Close()

	return io.ReadAll(output.Body)
}

func (s *S3Storage) Delete(key string) error {
	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
