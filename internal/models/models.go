package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type Rent struct {
	RentID        string      `json:"rentId" db:"rent_id"`
	Street        string      `json:"street" db:"street"`
	StreetNumber  int         `json:"streetNumber" db:"street_number"`
	Lat           float64     `json:"-" db:"lat"`
	Long          float64     `json:"-" db:"long"`
	Coordinates   Coordinates `json:"coordinates" db:"-"`
	Name          string      `json:"name" db:"name"`
	Description   string      `json:"description" db:"description"`
	Price         float64     `json:"price" db:"price"`
	BedroomCount  int         `json:"bedroomCount" db:"bedroom_count"`
	BathroomCount int         `json:"bathroomCount" db:"bathroom_count"`
	Parking       bool        `json:"parking" db:"parking"`
	Available     bool        `json:"available" db:"available"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
	Assets        []Asset     `json:"assets" db:"-"`
}

const AssetTypeImage = "image"

type Asset struct {
	AssetID   string    `json:"assetId" db:"asset_id"`
	Type      string    `json:"type" db:"type"`
	URL       string    `json:"url" db:"url"`
	FileID    string    `json:"fileId" db:"file_id"`
	FileName  string    `json:"fileName" db:"file_name"`
	RentID    string    `json:"rentId" db:"rent_id"`
	IsDeleted bool      `json:"-" db:"is_deleted"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
