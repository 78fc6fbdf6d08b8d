package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
)

// S3 stores avatars in an S3-compatible bucket. The bucket is expected to
// be public (or fronted by a CDN) at storage.s3.public_url.
type S3 struct {
	c         *s3.Client
	bucket    *string
	publicURL string
}

func NewS3() (*S3, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			viper.GetString("storage.s3.access_key_id"),
			viper.GetString("storage.s3.secret_access_key"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	bucket := aws.String(viper.GetString("storage.s3.bucket"))

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := viper.GetString("storage.s3.endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.Region = viper.GetString("storage.s3.region")
	})

	_, err = client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: bucket,
	})
	if err != nil {
		var apiErr smithy.APIError

		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return nil, fmt.Errorf("bucket '%s' does not exist", *bucket)
		}

		return nil, fmt.Errorf("failed to check if bucket exists, %w", err)
	}

	return &S3{
		c:         client,
		bucket:    bucket,
		publicURL: viper.GetString("storage.s3.public_url"),
	}, nil
}

func (s *S3) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        s.bucket,
		Key:           aws.String(name),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to S3, %w", err)
	}

	return s.publicURL + "/" + name, nil
}
