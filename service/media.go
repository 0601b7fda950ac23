package service

import (
	"Cookhub/config"
	osscli "Cookhub/pkg/oss"
	"Cookhub/types"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

const MaxUploadSize int64 = 10 << 20 // 10MB

// 上传分类，决定对象 key 的前缀
const (
	MediaRecipeImages   = "recipe_images"
	MediaStepImages     = "step_images"
	MediaProfileImages  = "profile_images"
	MediaCookbookCovers = "cookbook_covers"
)

func ValidMediaKind(kind string) bool {
	switch kind {
	case MediaRecipeImages, MediaStepImages, MediaProfileImages, MediaCookbookCovers:
		return true
	}
	return false
}

var imageFormats = map[string]struct {
	ext         string
	contentType string
}{
	"jpeg": {".jpg", "image/jpeg"},
	"png":  {".png", "image/png"},
	"webp": {".webp", "image/webp"},
}

// MediaStore 媒体文件存储，数据库只保存 key
type MediaStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// LocalStore 写本地目录，通过 /media 静态路由访问
type LocalStore struct {
	Root    string
	BaseURL string
}

func (s *LocalStore) Put(_ context.Context, key string, body io.Reader, _ string) error {
	full := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, body)
	return err
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *LocalStore) URL(key string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + key
}

// OssStore 阿里云 OSS
type OssStore struct {
	Client    *oss.Client
	Bucket    string
	Endpoint  string
	CdnDomain string
}

func (s *OssStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Bucket),
		Key:         oss.Ptr(key),
		Body:        body,
		ContentType: oss.Ptr(contentType),
	})
	return err
}

func (s *OssStore) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Bucket),
		Key:    oss.Ptr(key),
	})
	return err
}

func (s *OssStore) URL(key string) string {
	if s.CdnDomain != "" {
		return strings.TrimRight(s.CdnDomain, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s", s.Bucket, s.Endpoint, key)
}

// ProvideMediaStore 按 media.driver 选择存储
func ProvideMediaStore(conf *config.Config) MediaStore {
	if conf.Media.Driver == config.MediaDriverOss {
		return &OssStore{
			Client:    osscli.NewClient(conf.Oss),
			Bucket:    conf.Oss.Bucket,
			Endpoint:  conf.Oss.Endpoint,
			CdnDomain: conf.Oss.CdnDomain,
		}
	}
	return &LocalStore{Root: conf.Media.Root, BaseURL: conf.Media.BaseURL}
}

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	Upload(ctx context.Context, kind string, header *multipart.FileHeader) (*types.UploadResponse, error)
	URL(key string) string
}

type MediaService struct {
	Store MediaStore
}

// Upload 校验大小与图片格式后写入存储
func (s *MediaService) Upload(ctx context.Context, kind string, header *multipart.FileHeader) (*types.UploadResponse, error) {
	if !ValidMediaKind(kind) {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidImage, kind)
	}
	if header == nil || header.Size <= 0 || header.Size > MaxUploadSize {
		return nil, fmt.Errorf("%w: size must be between 1 byte and 10MB", ErrInvalidImage)
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, fmt.Errorf("%w: size must be between 1 byte and 10MB", ErrInvalidImage)
	}
	format, err := DetectImageFormat(data)
	if err != nil {
		return nil, err
	}

	meta := imageFormats[format]
	key := path.Join(kind, time.Now().Format("2006/01/02"), uuid.NewString()+meta.ext)
	if err := s.Store.Put(ctx, key, bytes.NewReader(data), meta.contentType); err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}
	return &types.UploadResponse{Key: key, Url: s.Store.URL(key)}, nil
}

func (s *MediaService) URL(key string) string {
	return s.Store.URL(key)
}

// DetectImageFormat 只解码头部，仅接受 jpeg/png/webp
func DetectImageFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	format = strings.ToLower(format)
	if _, ok := imageFormats[format]; !ok {
		return "", fmt.Errorf("%w: unsupported format %s", ErrInvalidImage, format)
	}
	return format, nil
}
