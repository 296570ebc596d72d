package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"rentservice/internal/models"
	"strings"
	"time"
)

type RentRepositoryImpl struct {
	db *sqlx.DB
}

type CreateRentRequest struct {
	Street        string             `json:"street"`
	StreetNumber  int                `json:"streetNumber"`
	Coordinates   models.Coordinates `json:"coordinates"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Price         float64            `json:"price"`
	BedroomCount  int                `json:"bedroomCount"`
	BathroomCount int                `json:"bathroomCount"`
	Parking       bool               `json:"parking"`
}

// UpdateRentRequest - частичное обновление, nil-поля не трогаются
type UpdateRentRequest struct {
	Street        *string             `json:"street"`
	StreetNumber  *int                `json:"streetNumber"`
	Coordinates   *models.Coordinates `json:"coordinates"`
	Name          *string             `json:"name"`
	Description   *string             `json:"description"`
	Price         *float64            `json:"price"`
	BedroomCount  *int                `json:"bedroomCount"`
	BathroomCount *int                `json:"bathroomCount"`
	Parking       *bool               `json:"parking"`
}

func NewRentRepository(db *sqlx.DB) *RentRepositoryImpl {
	return &RentRepositoryImpl{db: db}
}

func (r *RentRepositoryImpl) Create(ctx context.Context, rent *models.Rent) error {
	if rent.RentID == "" {
		rent.RentID = uuid.New().String()
	}

	rent.Lat = rent.Coordinates.Lat
	rent.Long = rent.Coordinates.Long
	rent.Available = true

	now := time.Now()
	rent.CreatedAt = now
	rent.UpdatedAt = now

	query := `
		INSERT INTO rents
		(rent_id, street, street_number, lat, long, name, description, price,
		 bedroom_count, bathroom_count, parking, available, created_at, updated_at)
		VALUES
		(:rent_id, :street, :street_number, :lat, :long, :name, :description, :price,
		 :bedroom_count, :bathroom_count, :parking, :available, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, rent)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("объявление с именем %s уже существует: %w", rent.Name, models.ErrConflict)
		}
		return fmt.Errorf("ошибка при создании объявления: %w", err)
	}

	return nil
}

func (r *RentRepositoryImpl) GetAvailableByID(ctx context.Context, rentID string) (*models.Rent, error) {
	query := `SELECT * FROM rents WHERE rent_id = $1 AND available = TRUE`

	var rent models.Rent
	err := r.db.GetContext(ctx, &rent, query, rentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("объявление с ID %s: %w", rentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении объявления: %w", err)
	}

	rent.Coordinates = models.Coordinates{Lat: rent.Lat, Long: rent.Long}

	return &rent, nil
}

func (r *RentRepositoryImpl) GetAllAvailable(ctx context.Context) ([]models.Rent, error) {
	query := `SELECT * FROM rents WHERE available = TRUE ORDER BY created_at DESC`

	var rents []models.Rent
	err := r.db.SelectContext(ctx, &rents, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка объявлений: %w", err)
	}

	for i := range rents {
		rents[i].Coordinates = models.Coordinates{Lat: rents[i].Lat, Long: rents[i].Long}
	}

	return rents, nil
}

// Update перезаписывает поля объявления. Обновление проходит только пока
// объявление доступно: снятые с публикации записи недоступны для изменения.
func (r *RentRepositoryImpl) Update(ctx context.Context, rent *models.Rent) error {
	rent.Lat = rent.Coordinates.Lat
	rent.Long = rent.Coordinates.Long
	rent.UpdatedAt = time.Now()

	query := `
		UPDATE rents SET
			street = :street,
			street_number = :street_number,
			lat = :lat,
			long = :long,
			name = :name,
			description = :description,
			price = :price,
			bedroom_count = :bedroom_count,
			bathroom_count = :bathroom_count,
			parking = :parking,
			updated_at = :updated_at
		WHERE rent_id = :rent_id AND available = TRUE
	`

	result, err := r.db.NamedExecContext(ctx, query, rent)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("объявление с именем %s уже существует: %w", rent.Name, models.ErrConflict)
		}
		return fmt.Errorf("ошибка при обновлении объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("объявление с ID %s: %w", rent.RentID, models.ErrNotFound)
	}

	return nil
}

// SetUnavailable снимает объявление с публикации. Запись физически не
// удаляется, обратного перехода нет.
func (r *RentRepositoryImpl) SetUnavailable(ctx context.Context, rentID string) error {
	query := `
		UPDATE rents SET
			available = FALSE,
			updated_at = CURRENT_TIMESTAMP
		WHERE rent_id = $1 AND available = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, rentID)
	if err != nil {
		return fmt.Errorf("ошибка при снятии объявления с публикации: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("объявление с ID %s: %w", rentID, models.ErrNotFound)
	}

	return nil
}
