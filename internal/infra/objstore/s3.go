package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store keeps each object as a JSON blob and uses the ETag as version token.
// Conditional writes rely on S3 If-Match / If-None-Match preconditions.
type S3Store struct {
	client S3API
	bucket string
	prefix string // Optional key prefix (e.g., "promo/")
}

type S3StoreConfig struct {
	Bucket   string
	Region   string
	Endpoint string // Optional custom endpoint (for MinIO, LocalStack, etc.)
	Prefix   string
}

func NewS3Store(ctx context.Context, cfg S3StoreConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	clientOpts := func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO/LocalStack
		}
	}

	return NewS3StoreWithClient(s3.NewFromConfig(awsCfg, clientOpts), cfg.Bucket, cfg.Prefix), nil
}

func NewS3StoreWithClient(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) Read(ctx context.Context, key string) (Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return Object{}, errNotFound(key)
		}
		return Object{}, errFailure("s3 get", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return Object{}, errFailure("s3 read body", key, err)
	}
	return Object{Value: body, Version: aws.ToString(out.ETag)}, nil
}

func (s *S3Store) WriteIfMatch(ctx context.Context, key string, value []byte, version string) (string, error) {
	if version == "" {
		return "", errConflict(key)
	}
	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + key),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
		IfMatch:     aws.String(version),
	})
	if err != nil {
		switch {
		case isS3PreconditionFailed(err), isS3ConditionalConflict(err):
			return "", errConflict(key)
		case isS3NotFound(err):
			return "", errNotFound(key)
		}
		return "", errFailure("s3 put", key, err)
	}
	return s.etag(key, out)
}

func (s *S3Store) WriteIfAbsent(ctx context.Context, key string, value []byte) (string, error) {
	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.prefix + key),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		if isS3PreconditionFailed(err) || isS3ConditionalConflict(err) {
			return "", errAlreadyExists(key)
		}
		return "", errFailure("s3 put", key, err)
	}
	return s.etag(key, out)
}

func (s *S3Store) etag(key string, out *s3.PutObjectOutput) (string, error) {
	etag := aws.ToString(out.ETag)
	if etag == "" {
		return "", errFailure("s3 put", key, errors.New("response carried no ETag"))
	}
	return etag, nil
}

func isS3NotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	return apiErrorCode(err) == "NoSuchKey" || apiErrorCode(err) == "NotFound"
}

// 412: the object changed (If-Match) or exists (If-None-Match)
func isS3PreconditionFailed(err error) bool {
	return apiErrorCode(err) == "PreconditionFailed"
}

// 409: a concurrent conditional write on the same key won the race
func isS3ConditionalConflict(err error) bool {
	return apiErrorCode(err) == "ConditionalRequestConflict"
}

func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
