package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeS3 struct {
	objects map[string]string
	putErr  error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_StoreAndDelete(t *testing.T) {
	client := &fakeS3{objects: map[string]string{}}
	s := newS3Storage(client, "videos", zaptest.NewLogger(t))

	ctx := context.Background()
	key, err := s.Store(ctx, "abc", &File{Name: "banner.jpg", ContentType: "image/jpeg", Body: strings.NewReader("img")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "abc/"))
	assert.Equal(t, "img", client.objects[key])

	require.NoError(t, s.Delete(ctx, key))
	assert.Empty(t, client.objects)
}

func TestS3Storage_StoreFailure(t *testing.T) {
	client := &fakeS3{objects: map[string]string{}, putErr: errors.New("bucket gone")}
	s := newS3Storage(client, "videos", zaptest.NewLogger(t))

	_, err := s.Store(context.Background(), "abc", &File{Name: "a.mp4", Body: strings.NewReader("x")})
	assert.ErrorContains(t, err, "bucket gone")
}
