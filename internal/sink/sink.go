// Package sink resolves a report destination to a writer: stdout, a local
// file, or an S3 object uploaded when the writer is closed.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBadURL = errors.New("invalid s3 url")

// S3Config holds client construction parameters. Empty fields fall back to
// the default AWS chain (environment, shared config, instance role).
type S3Config struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"` // e.g. MinIO
	PathStyle       bool   `mapstructure:"path-style"`
	AccessKeyID     string `mapstructure:"access-key-id"`
	SecretAccessKey string `mapstructure:"secret-access-key"`
}

// Putter is the slice of the S3 API a sink needs.
type Putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds a client from cfg.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// ParseS3URL splits s3://bucket/key.
func ParseS3URL(u string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(u, "s3://")
	if !ok {
		return "", "", fmt.Errorf("%w %q", ErrBadURL, u)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w %q: need s3://bucket/key", ErrBadURL, u)
	}
	return bucket, key, nil
}

// IsS3 reports whether dest names an S3 object.
func IsS3(dest string) bool { return strings.HasPrefix(dest, "s3://") }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Open resolves dest. "" and "-" write to stdout; s3://bucket/key buffers
// the report and uploads it on Close; anything else is a file path whose
// parent directories are created.
func Open(ctx context.Context, dest string, stdout io.Writer, cfg S3Config) (io.WriteCloser, error) {
	switch {
	case dest == "" || dest == "-":
		return nopCloser{stdout}, nil
	case IsS3(dest):
		bucket, key, err := ParseS3URL(dest)
		if err != nil {
			return nil, err
		}
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Writer(ctx, client, bucket, key), nil
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	return os.Create(dest)
}

// S3Writer collects everything written and PUTs it as one object on Close.
type S3Writer struct {
	ctx    context.Context
	client Putter
	bucket string
	key    string
	buf    bytes.Buffer
	closed bool
}

func NewS3Writer(ctx context.Context, client Putter, bucket, key string) *S3Writer {
	return &S3Writer{ctx: ctx, client: client, bucket: bucket, key: key}
}

func (w *S3Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, os.ErrClosed
	}
	return w.buf.Write(p)
}

// Close uploads the buffered report. Calling it twice is a no-op.
func (w *S3Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	in := &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(w.key),
		Body:        bytes.NewReader(w.buf.Bytes()),
		ContentType: aws.String(contentType(w.key)),
	}
	if _, err := w.client.PutObject(w.ctx, in); err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", w.bucket, w.key, err)
	}
	return nil
}

func contentType(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".json":
		return "application/json"
	case ".jsonl", ".ndjson":
		return "application/x-ndjson"
	case ".tsv", ".txt":
		return "text/tab-separated-values"
	}
	return "application/octet-stream"
}
