package media

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	url string
	err error
}

func (s *recordingStore) Upload(ctx context.Context, localPath string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("staged bytes"), 0o644))
	return path
}

func TestUploadStaged_RemovesFileOnSuccess(t *testing.T) {
	staged := writeTempFile(t, "avatar.png")

	url, err := UploadStaged(context.Background(), &recordingStore{url: "https://cdn.test/a.png"}, staged)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/a.png", url)

	_, statErr := os.Stat(staged)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUploadStaged_RemovesFileOnFailure(t *testing.T) {
	staged := writeTempFile(t, "avatar.png")

	_, err := UploadStaged(context.Background(), &recordingStore{err: fmt.Errorf("bucket gone")}, staged)
	require.Error(t, err)

	_, statErr := os.Stat(staged)
	assert.True(t, os.IsNotExist(statErr))
}

func multipartFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestStageFile(t *testing.T) {
	fh := multipartFileHeader(t, "avatar", "photo.png", "image content")
	dir := t.TempDir()

	staged, err := StageFile(fh, dir)
	require.NoError(t, err)

	assert.Equal(t, ".png", filepath.Ext(staged))
	assert.Equal(t, dir, filepath.Dir(staged))

	content, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, "image content", string(content))
}

func TestStageFile_NilHeader(t *testing.T) {
	_, err := StageFile(nil, t.TempDir())
	assert.Error(t, err)
}

func TestStageFile_CreatesDir(t *testing.T) {
	fh := multipartFileHeader(t, "avatar", "photo.png", "x")
	dir := filepath.Join(t.TempDir(), "nested", "staging")

	staged, err := StageFile(fh, dir)
	require.NoError(t, err)
	assert.FileExists(t, staged)
}

type fakeS3 struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Upload(t *testing.T) {
	staged := writeTempFile(t, "clip.png")
	client := &fakeS3{}
	store := newS3StoreWithClient(client, "media-bucket", "https://cdn.test/")

	url, err := store.Upload(context.Background(), staged)
	require.NoError(t, err)

	require.NotNil(t, client.lastInput)
	assert.Equal(t, "media-bucket", *client.lastInput.Bucket)
	assert.Equal(t, "image/png", *client.lastInput.ContentType)
	assert.Contains(t, *client.lastInput.Key, "media/")
	assert.Equal(t, "https://cdn.test/"+*client.lastInput.Key, url)
}

func TestS3Store_Upload_UnknownExtension(t *testing.T) {
	staged := writeTempFile(t, "blob.weird")
	client := &fakeS3{}
	store := newS3StoreWithClient(client, "media-bucket", "https://cdn.test")

	_, err := store.Upload(context.Background(), staged)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", *client.lastInput.ContentType)
}

func TestS3Store_Upload_PutFails(t *testing.T) {
	staged := writeTempFile(t, "clip.png")
	store := newS3StoreWithClient(&fakeS3{err: fmt.Errorf("access denied")}, "media-bucket", "https://cdn.test")

	_, err := store.Upload(context.Background(), staged)
	assert.Error(t, err)
}

func TestS3Store_Upload_MissingFile(t *testing.T) {
	store := newS3StoreWithClient(&fakeS3{}, "media-bucket", "https://cdn.test")

	_, err := store.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestNewS3Store_RequiresBucketAndBaseURL(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{BaseURL: "https://cdn.test"})
	assert.Error(t, err)

	_, err = NewS3Store(context.Background(), S3Config{Bucket: "media"})
	assert.Error(t, err)
}
