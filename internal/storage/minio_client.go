package storage

import (
	"context"
	"fmt"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"io"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"rentservice/internal/config"
	"rentservice/internal/models"
)

// UploadResult - идентификатор и URL загруженного файла во внешнем хранилище
type UploadResult struct {
	FileID string
	URL    string
	Name   string
}

// BulkDeleteResult - полное разбиение результатов массового удаления.
// Частичный сбой не является ошибкой: вызывающий всегда получает оба списка.
type BulkDeleteResult struct {
	Succeeded []string
	Failed    []string
}

type Storage interface {
	UploadImage(ctx context.Context, rentID, fileName, contentType string, file io.Reader, size int64) (*UploadResult, error)
	DeleteImage(ctx context.Context, fileID string) error
	BulkDelete(ctx context.Context, fileIDs []string) BulkDeleteResult
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
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	m := &MinIOClient{client: client, cfg: cfg}

	// creating the bucket on first start
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
		log.Printf("Создан бакет MinIO: %s", cfg.MinIO.BucketName)
	}

	return m, nil
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var objectNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// BuildObjectName строит глобально уникальное имя объекта: временной префикс
// защищает от коллизий при повторной загрузке файла с тем же именем.
func BuildObjectName(rentID, fileName string, now time.Time) string {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = objectNameSanitizer.ReplaceAllString(base, "_")

	return fmt.Sprintf("rents/%s/%d_%s%s", rentID, now.UnixMilli(), base, fileExt)
}

// ValidateImageType проверяет mime-тип до обращения к внешнему сервису
func ValidateImageType(contentType string) error {
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("неподдерживаемый тип файла %s, разрешены JPEG, PNG, WebP, GIF: %w",
			contentType, models.ErrValidation)
	}
	return nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, rentID, fileName, contentType string, file io.Reader, size int64) (*UploadResult, error) {
	if err := ValidateImageType(contentType); err != nil {
		return nil, err
	}

	now := time.Now()
	objectName := BuildObjectName(rentID, fileName, now)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"rent-id":           rentID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		// no local retry, the remote message goes up as is
		return nil, fmt.Errorf("%w: %v", models.ErrUpload, err)
	}

	imageURL := fmt.Sprintf("%s/%s/%s", m.cfg.MinIO.PublicURL, m.cfg.MinIO.BucketName, objectName)

	return &UploadResult{
		FileID: objectName,
		URL:    imageURL,
		Name:   fileName,
	}, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, fileID string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, fileID,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrDelete, err)
	}
	return nil
}

// BulkDelete удаляет файлы строго по одному: частичный успех должен быть
// отличим от полного сбоя. Ошибка одного ID никогда не прерывает удаление
// остальных и наружу не пробрасывается.
func (m *MinIOClient) BulkDelete(ctx context.Context, fileIDs []string) BulkDeleteResult {
	return bulkDelete(ctx, fileIDs, m.DeleteImage)
}

func bulkDelete(ctx context.Context, fileIDs []string, deleteFn func(context.Context, string) error) BulkDeleteResult {
	result := BulkDeleteResult{}

	for _, fileID := range fileIDs {
		if err := deleteFn(ctx, fileID); err != nil {
			log.Printf("Предупреждение: не удалось удалить файл %s: %v", fileID, err)
			result.Failed = append(result.Failed, fileID)
			continue
		}
		result.Succeeded = append(result.Succeeded, fileID)
	}

	return result
}
