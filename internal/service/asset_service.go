package service

import (
	"context"
	"io"
	"log"
	"rentservice/internal/models"
	"rentservice/internal/repository"
	"rentservice/internal/storage"

	"golang.org/x/sync/errgroup"
)

// FileUpload - один файл из multipart-запроса
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type AssetService interface {
	UploadFile(ctx context.Context, rentID string, file FileUpload) (*models.Asset, error)
	UploadMultiple(ctx context.Context, rentID string, files []FileUpload) ([]models.Asset, error)
	GetByRentID(ctx context.Context, rentID string) ([]models.Asset, error)
	SoftDelete(ctx context.Context, assetID string) error
	HardDelete(ctx context.Context, assetID string) error
	DeleteByRentID(ctx context.Context, rentID string) error
}

type assetService struct {
	assetRepo repository.AssetRepository
	storage   storage.Storage
}

func NewAssetService(assetRepo repository.AssetRepository, storage storage.Storage) AssetService {
	return &assetService{
		assetRepo: assetRepo,
		storage:   storage,
	}
}

func (s *assetService) UploadFile(ctx context.Context, rentID string, file FileUpload) (*models.Asset, error) {
	result, err := s.storage.UploadImage(ctx, rentID, file.FileName, file.ContentType, file.Content, file.Size)
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		Type:     models.AssetTypeImage,
		URL:      result.URL,
		FileID:   result.FileID,
		FileName: result.Name,
		RentID:   rentID,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// UploadMultiple загружает файлы во внешнее хранилище параллельно, падает при
// первой же ошибке и не откатывает уже загруженные объекты. Записи ассетов
// создаются после всех загрузок в порядке исходных файлов, поэтому порядок в
// каталоге соответствует порядку отправки, а не порядку завершения загрузок.
func (s *assetService) UploadMultiple(ctx context.Context, rentID string, files []FileUpload) ([]models.Asset, error) {
	results := make([]*storage.UploadResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			result, err := s.storage.UploadImage(gctx, rentID, file.FileName, file.ContentType, file.Content, file.Size)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	assets := make([]models.Asset, 0, len(files))
	for _, result := range results {
		asset := models.Asset{
			Type:     models.AssetTypeImage,
			URL:      result.URL,
			FileID:   result.FileID,
			FileName: result.Name,
			RentID:   rentID,
		}

		if err := s.assetRepo.Create(ctx, &asset); err != nil {
			return nil, err
		}

		assets = append(assets, asset)
	}

	return assets, nil
}

func (s *assetService) GetByRentID(ctx context.Context, rentID string) ([]models.Asset, error) {
	return s.assetRepo.GetActiveByRentID(ctx, rentID)
}

// SoftDelete строгий: если внешнее хранилище не подтвердило удаление, локальная
// запись остается нетронутой.
func (s *assetService) SoftDelete(ctx context.Context, assetID string) error {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteImage(ctx, asset.FileID); err != nil {
		return err
	}

	return s.assetRepo.MarkDeleted(ctx, assetID)
}

// HardDelete - тот же порядок "сначала внешнее хранилище, потом БД", но запись
// удаляется физически.
func (s *assetService) HardDelete(ctx context.Context, assetID string) error {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteImage(ctx, asset.FileID); err != nil {
		return err
	}

	return s.assetRepo.Delete(ctx, assetID)
}

// DeleteByRentID - каскад при снятии объявления. В отличие от одиночного
// удаления этот путь работает по принципу best effort: сбои внешнего
// хранилища только логируются, локальные ассеты помечаются удаленными в любом
// случае. Осиротевшие файлы во внешнем хранилище - вопрос чистки, а не
// консистентности каталога.
func (s *assetService) DeleteByRentID(ctx context.Context, rentID string) error {
	assets, err := s.assetRepo.GetActiveByRentID(ctx, rentID)
	if err != nil {
		return err
	}

	if len(assets) == 0 {
		return nil
	}

	fileIDs := make([]string, 0, len(assets))
	for _, asset := range assets {
		fileIDs = append(fileIDs, asset.FileID)
	}

	result := s.storage.BulkDelete(ctx, fileIDs)

	if err := s.assetRepo.MarkDeletedByRentID(ctx, rentID); err != nil {
		return err
	}

	log.Printf("Удалено %d ассетов объявления %s", len(result.Succeeded), rentID)

	if len(result.Failed) > 0 {
		log.Printf("Предупреждение: не удалось удалить %d файлов из хранилища", len(result.Failed))
	}

	return nil
}
