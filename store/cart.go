package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jonathan-dev2002/minishop-api/models"
)

// CartStore owns cart identity and line-item rows. All quantity arithmetic on
// repeated adds happens in a single atomic upsert so concurrent adds for the
// same (cart, product) pair can never create duplicate rows.
type CartStore interface {
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	FindItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItemDetail, error)
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) (bool, error)
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error)
}

type cartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) CartStore {
	return &cartStore{db: db}
}

// GetOrCreateCart returns the user's cart, creating it on first access. The
// unique index on user_id arbitrates concurrent first access: the loser of the
// insert race re-reads the winner's row.
func (s *cartStore) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{ID: uuid.New(), UserID: userID}
	if createErr := s.db.WithContext(ctx).Create(&cart).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return nil, err
			}
			return &cart, nil
		}
		return nil, createErr
	}
	return &cart, nil
}

func (s *cartStore) FindItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItemDetail, error) {
	var items []models.CartItemDetail
	err := s.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id AS item_id, cart_items.product_id, products.name AS product_name, products.price, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.created_at ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertItem inserts the row or, if the (cart, product) pair already exists,
// increments its quantity in place.
func (s *cartStore) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	item := models.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
}

// UpdateItemQuantity sets an absolute quantity. The cart id is part of the
// match so callers can only touch rows in their own cart.
func (s *cartStore) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) (bool, error) {
	result := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *cartStore) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
