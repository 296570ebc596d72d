package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"rentservice/internal/models"
	"time"
)

type AssetRepositoryImpl struct {
	db *sqlx.DB
}

func NewAssetRepository(db *sqlx.DB) *AssetRepositoryImpl {
	return &AssetRepositoryImpl{db: db}
}

func (r *AssetRepositoryImpl) Create(ctx context.Context, asset *models.Asset) error {
	if asset.AssetID == "" {
		asset.AssetID = uuid.New().String()
	}

	if asset.Type == "" {
		asset.Type = models.AssetTypeImage
	}

	now := time.Now()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	query := `
		INSERT INTO assets (asset_id, type, url, file_id, file_name, rent_id, is_deleted, created_at, updated_at)
		VALUES (:asset_id, :type, :url, :file_id, :file_name, :rent_id, :is_deleted, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, asset)
	if err != nil {
		return fmt.Errorf("ошибка при создании ассета: %w", err)
	}

	return nil
}

func (r *AssetRepositoryImpl) GetByID(ctx context.Context, assetID string) (*models.Asset, error) {
	query := `SELECT * FROM assets WHERE asset_id = $1`

	var asset models.Asset
	err := r.db.GetContext(ctx, &asset, query, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ассет с ID %s: %w", assetID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении ассета: %w", err)
	}

	return &asset, nil
}

func (r *AssetRepositoryImpl) GetActiveByRentID(ctx context.Context, rentID string) ([]models.Asset, error) {
	query := `SELECT * FROM assets WHERE rent_id = $1 AND is_deleted = FALSE ORDER BY created_at DESC`

	var assets []models.Asset
	err := r.db.SelectContext(ctx, &assets, query, rentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ассетов объявления: %w", err)
	}

	return assets, nil
}

func (r *AssetRepositoryImpl) MarkDeleted(ctx context.Context, assetID string) error {
	query := `
		UPDATE assets SET
			is_deleted = TRUE,
			updated_at = CURRENT_TIMESTAMP
		WHERE asset_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, assetID)
	if err != nil {
		return fmt.Errorf("ошибка при пометке ассета удаленным: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("ассет с ID %s: %w", assetID, models.ErrNotFound)
	}

	return nil
}

func (r *AssetRepositoryImpl) Delete(ctx context.Context, assetID string) error {
	query := `DELETE FROM assets WHERE asset_id = $1`

	result, err := r.db.ExecContext(ctx, query, assetID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении ассета: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("ассет с ID %s: %w", assetID, models.ErrNotFound)
	}

	return nil
}

// MarkDeletedByRentID помечает удаленными все ассеты объявления, включая уже
// помеченные. Вызывается каскадом при снятии объявления с публикации.
func (r *AssetRepositoryImpl) MarkDeletedByRentID(ctx context.Context, rentID string) error {
	query := `
		UPDATE assets SET
			is_deleted = TRUE,
			updated_at = CURRENT_TIMESTAMP
		WHERE rent_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, rentID)
	if err != nil {
		return fmt.Errorf("ошибка при пометке ассетов объявления: %w", err)
	}

	return nil
}
