package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"socialconnect/internal/config"
)

// Storage is the media store collaborator: it keeps profile pictures and
// hands back opaque object references. The core only stores and returns the
// reference.
type Storage interface {
	UploadAvatar(ctx context.Context, userID int64, fileName, contentType string, file io.Reader, size int64) (string, error)
	RemoveAvatar(ctx context.Context, objectName string) error
	AvatarURL(ctx context.Context, objectName string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

func (m *MinIOClient) UploadAvatar(ctx context.Context, userID int64, fileName, contentType string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	objectName := fmt.Sprintf("users/%d/%s%s", userID, uuid.New().String(), fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return objectName, nil
}

func (m *MinIOClient) RemoveAvatar(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove avatar: %w", err)
	}
	return nil
}

func (m *MinIOClient) AvatarURL(ctx context.Context, objectName string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.cfg.MinIO.BucketName, objectName, m.cfg.MinIO.URLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign avatar url: %w", err)
	}
	return u.String(), nil
}
