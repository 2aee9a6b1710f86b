//go:build unit

package objstore_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/objstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	getOut *s3.GetObjectOutput
	getErr error
	putOut *s3.PutObjectOutput
	putErr error

	lastPut *s3.PutObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return f.getOut, f.getErr
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastPut = in
	return f.putOut, f.putErr
}

func TestS3Store_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("returns body and etag", func(t *testing.T) {
		fake := &fakeS3{getOut: &s3.GetObjectOutput{
			Body: io.NopCloser(bytes.NewReader([]byte(`{"codes":[]}`))),
			ETag: aws.String(`"abc"`),
		}}
		s := objstore.NewS3StoreWithClient(fake, "bucket", "promo/")

		obj, err := s.Read(ctx, "pool:100")
		require.NoError(t, err)
		assert.Equal(t, `"abc"`, obj.Version)
		assert.Equal(t, `{"codes":[]}`, string(obj.Value))
	})

	t.Run("missing key", func(t *testing.T) {
		s := objstore.NewS3StoreWithClient(&fakeS3{getErr: &types.NoSuchKey{}}, "bucket", "")

		_, err := s.Read(ctx, "pool:100")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("transport failure", func(t *testing.T) {
		s := objstore.NewS3StoreWithClient(&fakeS3{getErr: &smithy.GenericAPIError{Code: "InternalError"}}, "bucket", "")

		_, err := s.Read(ctx, "pool:100")
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})
}

func TestS3Store_WriteIfMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends If-Match with prefixed key", func(t *testing.T) {
		fake := &fakeS3{putOut: &s3.PutObjectOutput{ETag: aws.String(`"v2"`)}}
		s := objstore.NewS3StoreWithClient(fake, "bucket", "promo/")

		v, err := s.WriteIfMatch(ctx, "pool:100", []byte("{}"), `"v1"`)
		require.NoError(t, err)
		assert.Equal(t, `"v2"`, v)
		require.NotNil(t, fake.lastPut)
		assert.Equal(t, "promo/pool:100", aws.ToString(fake.lastPut.Key))
		assert.Equal(t, `"v1"`, aws.ToString(fake.lastPut.IfMatch))
		assert.Nil(t, fake.lastPut.IfNoneMatch)
	})

	tests := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{name: "precondition failed", err: &smithy.GenericAPIError{Code: "PreconditionFailed"}, kind: infra.KindConflict},
		{name: "concurrent conditional write", err: &smithy.GenericAPIError{Code: "ConditionalRequestConflict"}, kind: infra.KindConflict},
		{name: "object vanished", err: &smithy.GenericAPIError{Code: "NoSuchKey"}, kind: infra.KindNotFound},
		{name: "other failure", err: &smithy.GenericAPIError{Code: "SlowDown"}, kind: infra.KindStoreFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := objstore.NewS3StoreWithClient(&fakeS3{putErr: tt.err}, "bucket", "")

			_, err := s.WriteIfMatch(ctx, "pool:100", []byte("{}"), `"v1"`)
			assert.True(t, infra.IsKind(err, tt.kind), "got %v", err)
		})
	}

	t.Run("empty version never reaches S3", func(t *testing.T) {
		fake := &fakeS3{}
		s := objstore.NewS3StoreWithClient(fake, "bucket", "")

		_, err := s.WriteIfMatch(ctx, "pool:100", []byte("{}"), "")
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Nil(t, fake.lastPut)
	})

	t.Run("missing etag in response", func(t *testing.T) {
		s := objstore.NewS3StoreWithClient(&fakeS3{putOut: &s3.PutObjectOutput{}}, "bucket", "")

		_, err := s.WriteIfMatch(ctx, "pool:100", []byte("{}"), `"v1"`)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})
}

func TestS3Store_WriteIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("sends If-None-Match", func(t *testing.T) {
		fake := &fakeS3{putOut: &s3.PutObjectOutput{ETag: aws.String(`"v1"`)}}
		s := objstore.NewS3StoreWithClient(fake, "bucket", "")

		v, err := s.WriteIfAbsent(ctx, "ledger:380501234567", []byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, `"v1"`, v)
		assert.Equal(t, "*", aws.ToString(fake.lastPut.IfNoneMatch))
	})

	t.Run("object exists", func(t *testing.T) {
		s := objstore.NewS3StoreWithClient(&fakeS3{putErr: &smithy.GenericAPIError{Code: "PreconditionFailed"}}, "bucket", "")

		_, err := s.WriteIfAbsent(ctx, "ledger:380501234567", []byte("{}"))
		assert.True(t, infra.IsKind(err, infra.KindAlreadyExists))
	})
}
