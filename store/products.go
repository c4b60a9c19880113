// Package store holds the gorm repositories for the relational source of truth.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jonathan-dev2002/minishop-api/models"
)

// ProductStore is the catalog store adapter. Products are never deleted
// physically; SoftDelete flips is_active off.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	BulkCreate(ctx context.Context, products []models.Product) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch models.UpdateProductRequest) (*models.Product, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

type productStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *productStore) BulkCreate(ctx context.Context, products []models.Product) ([]models.Product, error) {
	for i := range products {
		if products[i].ID == uuid.Nil {
			products[i].ID = uuid.New()
		}
	}
	if err := s.db.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productStore) List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	filter = filter.Normalize()

	query := s.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", *filter.IsActive)
	if filter.Search != "" {
		likePattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Order(filter.OrderClause()).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *productStore) Update(ctx context.Context, id uuid.UUID, patch models.UpdateProductRequest) (*models.Product, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Stock != nil {
		updates["stock"] = *patch.Stock
	}

	result := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *productStore) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
