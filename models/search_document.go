package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSearchDocument is the projection of a product pushed to the search
// index. It is regenerated on every catalog mutation and never read back.
type ProductSearchDocument struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"` // empty string, never null: the index schema wants one type
	Price       decimal.Decimal `json:"price"`
	CategoryID  uuid.UUID       `json:"category_id"`
	ImageURL    *string         `json:"image_url"`
}

// SearchDocumentFromProduct builds the index document for a product.
func SearchDocumentFromProduct(p *Product) ProductSearchDocument {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}
	return ProductSearchDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
	}
}
