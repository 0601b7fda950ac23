package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// fileHeader 构造一个真实的 multipart 文件头
func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestDetectImageFormat(t *testing.T) {
	format, err := DetectImageFormat(pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	_, err = DetectImageFormat([]byte("GIF89a not really"))
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = DetectImageFormat([]byte("plain text"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestMediaService_UploadLocal(t *testing.T) {
	root := t.TempDir()
	s := &MediaService{Store: &LocalStore{Root: root, BaseURL: "/media/"}}

	resp, err := s.Upload(context.Background(), MediaRecipeImages, fileHeader(t, "dish.png", pngBytes(t)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Key, MediaRecipeImages+"/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".png"))
	assert.Equal(t, "/media/"+resp.Key, resp.Url)

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(resp.Key)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes(t), stored)

	require.NoError(t, s.Store.Delete(context.Background(), resp.Key))
	require.NoError(t, s.Store.Delete(context.Background(), resp.Key))
}

func TestMediaService_UploadRejects(t *testing.T) {
	s := &MediaService{Store: &LocalStore{Root: t.TempDir(), BaseURL: "/media"}}

	_, err := s.Upload(context.Background(), "videos", fileHeader(t, "a.png", pngBytes(t)))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = s.Upload(context.Background(), MediaStepImages, fileHeader(t, "a.png", []byte("hello")))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = s.Upload(context.Background(), MediaStepImages, nil)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
