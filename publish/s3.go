// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const s3Scheme = "s3://"

// UploadTimeout bounds each S3 upload.
const UploadTimeout = 10 * time.Second

// S3 publishes to an object in an S3 bucket.
type S3 struct {
	Client      s3iface.S3API
	Bucket      string
	Key         string
	ContentType string
}

// ParseS3URL returns the bucket and key of an s3://bucket/key URL.
func ParseS3URL(url string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(url, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("publish: %q is not an %s URL", url, s3Scheme)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("publish: %q must be of the form %sbucket/key", url, s3Scheme)
	}
	return bucket, key, nil
}

// NewS3Client returns a new S3 client for the given region, using the
// standard AWS credential chain. A non-empty endpoint selects an
// S3-compatible store, addressed with path-style requests.
func NewS3Client(region, endpoint string) (s3iface.S3API, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("publish: failed to create S3 session: %w", err)
	}
	return s3.New(sess), nil
}

func (p *S3) Publish(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	in := &s3.PutObjectInput{
		Bucket:        aws.String(p.Bucket),
		Key:           aws.String(p.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
	}
	if p.ContentType != "" {
		in.ContentType = aws.String(p.ContentType)
	}
	if _, err := p.Client.PutObjectWithContext(ctx, in); err != nil {
		return fmt.Errorf("publish: failed to upload %s: %w", p, err)
	}
	slog.Info("uploaded scene", "dest", p.String(), "bytes", size)
	return nil
}

func (p *S3) String() string { return s3Scheme + p.Bucket + "/" + p.Key }
