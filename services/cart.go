package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

// CartService owns cart identity and line-item arithmetic. Every mutation
// returns a freshly recomputed cart view so the caller always observes its own
// write. Totals are decimal, computed from the current product price on each
// read; nothing derived is ever persisted.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartResponse, error)
	AddItem(ctx context.Context, userID uuid.UUID, req models.AddToCartRequest) (*models.CartResponse, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req models.UpdateCartItemRequest) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*models.CartResponse, error)
}

type cartService struct {
	carts    store.CartStore
	products store.ProductStore
}

func NewCartService(carts store.CartStore, products store.ProductStore) CartService {
	return &cartService{carts: carts, products: products}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartResponse, error) {
	return s.buildCartResponse(ctx, userID)
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req models.AddToCartRequest) (*models.CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.Validation("Quantity must be greater than zero")
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Product not found")
	}
	if !product.IsActive {
		// Soft-deleted products count as absent.
		return nil, apperrors.NotFound("Product not found")
	}

	cart, err := s.carts.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if err := s.carts.UpsertItem(ctx, cart.ID, req.ProductID, req.Quantity); err != nil {
		return nil, apperrors.Database(err)
	}

	return s.buildCartResponse(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req models.UpdateCartItemRequest) (*models.CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.Validation("Quantity must be greater than zero")
	}

	cart, err := s.carts.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	updated, err := s.carts.UpdateItemQuantity(ctx, cart.ID, itemID, req.Quantity)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if !updated {
		return nil, apperrors.NotFound("Cart item not found")
	}

	return s.buildCartResponse(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*models.CartResponse, error) {
	cart, err := s.carts.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	deleted, err := s.carts.DeleteItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if !deleted {
		return nil, apperrors.NotFound("Cart item not found")
	}

	return s.buildCartResponse(ctx, userID)
}

func (s *cartService) buildCartResponse(ctx context.Context, userID uuid.UUID) (*models.CartResponse, error) {
	cart, err := s.carts.GetOrCreateCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart not found")
		}
		return nil, apperrors.Database(err)
	}

	items, err := s.carts.FindItems(ctx, cart.ID)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	totalPrice := decimal.Zero
	totalItems := 0
	itemResponses := make([]models.CartItemResponse, 0, len(items))
	for _, item := range items {
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalPrice = totalPrice.Add(subtotal)
		totalItems += item.Quantity

		itemResponses = append(itemResponses, models.CartItemResponse{
			ItemID:      item.ItemID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    subtotal,
		})
	}

	return &models.CartResponse{
		ID:         cart.ID,
		UserID:     userID,
		Items:      itemResponses,
		TotalPrice: totalPrice,
		TotalItems: totalItems,
	}, nil
}
