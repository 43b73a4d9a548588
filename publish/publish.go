// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package publish writes encoded scene documents to their destination:
// a writer such as standard output, a local file, or an S3 object.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Stdout is the destination name for standard output.
const Stdout = "-"

// Publisher writes a document to a destination.
type Publisher interface {
	// Publish writes the given document.
	Publish(ctx context.Context, data []byte) error

	// String returns a description of the destination, for logging.
	String() string
}

// Options are the settings used by [New] for remote destinations.
type Options struct {

	// ContentType is the media type stored with remote objects.
	ContentType string

	// Region is the AWS region for s3:// destinations.
	Region string

	// Endpoint overrides the S3 endpoint for s3:// destinations.
	Endpoint string
}

// New returns the [Publisher] for the given destination:
// [Stdout] (or "") for standard output, an s3://bucket/key URL
// for an S3 object, and anything else for a local file path.
func New(dest string, opts Options) (Publisher, error) {
	switch {
	case dest == "" || dest == Stdout:
		return &Writer{W: os.Stdout, Name: "stdout"}, nil
	case strings.HasPrefix(dest, s3Scheme):
		bucket, key, err := ParseS3URL(dest)
		if err != nil {
			return nil, err
		}
		client, err := NewS3Client(opts.Region, opts.Endpoint)
		if err != nil {
			return nil, err
		}
		return &S3{Client: client, Bucket: bucket, Key: key, ContentType: opts.ContentType}, nil
	default:
		path, err := homedir.Expand(dest)
		if err != nil {
			return nil, fmt.Errorf("publish: %w", err)
		}
		return &File{Path: path}, nil
	}
}

// Writer publishes to an [io.Writer].
type Writer struct {
	W io.Writer

	// Name describes the writer for logging.
	Name string
}

func (w *Writer) Publish(_ context.Context, data []byte) error {
	_, err := w.W.Write(data)
	return err
}

func (w *Writer) String() string { return w.Name }

// File publishes to a local file, creating its directory if needed.
// The file is written to a temporary name and then renamed, so that
// readers never see a partial document.
type File struct {
	Path string
}

func (f *File) Publish(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("publish: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (f *File) String() string { return f.Path }
