// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Sink uploads artifacts to an S3 bucket.
type S3Sink struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Sink returns a sink uploading to the bucket in region, with object
// keys prefixed by prefix. Credentials come from the default AWS chain.
func NewS3Sink(region, bucket, prefix string) (*S3Sink, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("creating AWS session: %w", err)
	}
	return newS3Sink(s3.New(sess), bucket, prefix), nil
}

func newS3Sink(client S3API, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Write uploads data as the object prefix/name.
func (s *S3Sink) Write(ctx context.Context, name string, data []byte) error {
	key := path.Join(s.prefix, name)
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return fmt.Errorf("uploading s3://%s/%s: %w", s.bucket, key, err)
	}
	logger.Debugf("uploaded %d bytes to s3://%s/%s", len(data), s.bucket, key)
	return nil
}

// Kind returns "s3".
func (*S3Sink) Kind() string { return "s3" }
