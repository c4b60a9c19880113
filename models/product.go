package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"-"`
	Name          string          `gorm:"not null" json:"name"`
	Description   *string         `json:"description"`
	ImageURL      *string         `json:"image_url"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	AverageRating float64         `gorm:"not null;default:0" json:"average_rating"`
	ReviewCount   int             `gorm:"not null;default:0" json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
