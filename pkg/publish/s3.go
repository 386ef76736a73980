// Package publish uploads rendered documents to object storage.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/golia-dev/golia/pkg/builder"
)

// S3API is the subset of the S3 client the publisher uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher renders components and uploads them to an S3 bucket.
//
// The client is injected so callers control credentials and region:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := publish.NewS3Publisher(s3.NewFromConfig(cfg), "my-bucket", "site/")
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Publisher creates a publisher for the given bucket and key
// prefix.
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{client: client, bucket: bucket, prefix: prefix}
}

// Publish renders the component and uploads it under key, returning
// the full object key.
func (p *S3Publisher) Publish(ctx context.Context, key string, comp *builder.Component, minifyCSS bool) (string, error) {
	return p.PublishHTML(ctx, key, comp.Render(minifyCSS))
}

// PublishHTML uploads already-rendered HTML under key, returning the
// full object key.
func (p *S3Publisher) PublishHTML(ctx context.Context, key, html string) (string, error) {
	objectKey := path.Join(p.prefix, key)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader([]byte(html)),
		ContentType:   aws.String("text/html; charset=utf-8"),
		ContentLength: aws.Int64(int64(len(html))),
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", p.bucket, objectKey, err)
	}
	return objectKey, nil
}
