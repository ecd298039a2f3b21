// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package artifact

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Sink stores artifacts under a name.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
	Kind() string
}

// Observer records successful artifact writes.
type Observer interface {
	ObserveArtifactWrite(sink string)
}

// S3API is the subset of the S3 API used to upload artifacts.
type S3API interface {
	PutObjectWithContext(aws.Context, *s3.PutObjectInput, ...request.Option) (
		*s3.PutObjectOutput, error)
}
