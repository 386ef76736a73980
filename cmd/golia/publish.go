package main

import (
	"fmt"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/golia-dev/golia/internal/config"
	"github.com/golia-dev/golia/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		key    string
	)

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Upload a rendered document to S3",
		Long: `Upload a rendered HTML document to the configured S3 bucket.

The bucket, key prefix, and region come from the publish section of
golia.json; flags override them. Credentials are resolved through the
standard AWS chain (environment, shared config, instance role).

Examples:
  golia publish dist/index.html
  golia publish dist/index.html --key about.html
  golia publish dist/index.html --bucket my-site --prefix staging`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, args[0], bucket, prefix, key)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default from golia.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from golia.json)")
	cmd.Flags().StringVar(&key, "key", "", "Object key (default: the file name)")

	return cmd
}

func runPublish(cmd *cobra.Command, file, bucket, prefix, key string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if bucket == "" {
		bucket = cfg.Publish.Bucket
	}
	if bucket == "" {
		return fmt.Errorf("no bucket configured: set publish.bucket in golia.json or pass --bucket")
	}
	if prefix == "" {
		prefix = cfg.Publish.Prefix
	}
	if key == "" {
		key = filepath.Base(file)
	}

	html, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Publish.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Publish.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	pub := publish.NewS3Publisher(s3.NewFromConfig(awsCfg), bucket, prefix)
	objectKey, err := pub.PublishHTML(ctx, key, string(html))
	if err != nil {
		return err
	}
	success("published s3://%s/%s", bucket, objectKey)
	return nil
}
