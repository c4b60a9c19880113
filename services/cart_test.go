package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

// fakeCartStore mirrors the relational cart tables in memory. Items keep
// insertion order, matching the created_at ASC ordering of the real store.
type fakeCartStore struct {
	mu       sync.Mutex
	carts    map[uuid.UUID]*models.Cart
	items    []*models.CartItem
	products *fakeProductStore
}

func newFakeCartStore(products *fakeProductStore) *fakeCartStore {
	return &fakeCartStore{
		carts:    make(map[uuid.UUID]*models.Cart),
		products: products,
	}
}

func (s *fakeCartStore) GetOrCreateCart(_ context.Context, userID uuid.UUID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[userID]; ok {
		return cart, nil
	}
	cart := &models.Cart{ID: uuid.New(), UserID: userID}
	s.carts[userID] = cart
	return cart, nil
}

func (s *fakeCartStore) FindItems(_ context.Context, cartID uuid.UUID) ([]models.CartItemDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var details []models.CartItemDetail
	for _, item := range s.items {
		if item.CartID != cartID {
			continue
		}
		product := s.products.get(item.ProductID)
		if product == nil {
			continue
		}
		details = append(details, models.CartItemDetail{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
		})
	}
	return details, nil
}

func (s *fakeCartStore) UpsertItem(_ context.Context, cartID, productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += quantity
			return nil
		}
	}
	s.items = append(s.items, &models.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (s *fakeCartStore) UpdateItemQuantity(_ context.Context, cartID, itemID uuid.UUID, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == itemID && item.CartID == cartID {
			item.Quantity = quantity
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCartStore) DeleteItem(_ context.Context, cartID, itemID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == itemID && item.CartID == cartID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ store.CartStore = (*fakeCartStore)(nil)

func requireKind(t *testing.T, err error, kind apperrors.Kind) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"expected %s, got %s", want, got.String())
}

func seedProduct(t *testing.T, products *fakeProductStore, name, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      100,
		IsActive:   true,
	}
	require.NoError(t, products.Create(context.Background(), product))
	return product
}

func newCartFixture(t *testing.T) (CartService, *fakeProductStore, *fakeCartStore) {
	t.Helper()
	products := newFakeProductStore()
	carts := newFakeCartStore(products)
	return NewCartService(carts, products), products, carts
}

func TestGetCart_CreatesEmptyCartOnFirstAccess(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	userID := uuid.New()

	resp, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, userID, resp.UserID)
	require.NotEqual(t, uuid.Nil, resp.ID)
	require.Empty(t, resp.Items)
	require.Equal(t, 0, resp.TotalItems)
	requireDecimal(t, "0", resp.TotalPrice)

	// Same cart on the next read.
	again, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, resp.ID, again.ID)
}

func TestAddItem_MergesQuantitiesForSameProduct(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "iPhone 15", "10.00")
	userID := uuid.New()

	resp, err := svc.AddItem(context.Background(), userID, models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, 2, resp.Items[0].Quantity)
	requireDecimal(t, "20.00", resp.TotalPrice)

	// Adding the same product again merges into the existing row.
	resp, err = svc.AddItem(context.Background(), userID, models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Equal(t, 5, resp.Items[0].Quantity)
	require.Equal(t, 5, resp.TotalItems)
	requireDecimal(t, "50.00", resp.TotalPrice)
	requireDecimal(t, "50.00", resp.Items[0].Subtotal)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Keyboard", "49.90")
	userID := uuid.New()

	for _, quantity := range []int{0, -1} {
		_, err := svc.AddItem(context.Background(), userID, models.AddToCartRequest{
			ProductID: product.ID,
			Quantity:  quantity,
		})
		requireKind(t, err, apperrors.KindValidation)
	}

	// The rejected adds left no rows behind.
	resp, err := svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, resp.Items)
}

func TestAddItem_UnknownProductNotFound(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), models.AddToCartRequest{
		ProductID: uuid.New(),
		Quantity:  1,
	})
	requireKind(t, err, apperrors.KindNotFound)
}

func TestAddItem_InactiveProductNotFound(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Discontinued", "5.00")
	deleted, err := products.SoftDelete(context.Background(), product.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = svc.AddItem(context.Background(), uuid.New(), models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  1,
	})
	requireKind(t, err, apperrors.KindNotFound)
}

func TestUpdateItem_SetsAbsoluteQuantity(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Mouse", "25.50")
	userID := uuid.New()

	resp, err := svc.AddItem(context.Background(), userID, models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  4,
	})
	require.NoError(t, err)
	itemID := resp.Items[0].ItemID

	resp, err = svc.UpdateItem(context.Background(), userID, itemID, models.UpdateCartItemRequest{Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Items[0].Quantity)
	requireDecimal(t, "25.50", resp.TotalPrice)
}

func TestUpdateItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Cable", "3.00")
	userID := uuid.New()

	resp, err := svc.AddItem(context.Background(), userID, models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	itemID := resp.Items[0].ItemID

	_, err = svc.UpdateItem(context.Background(), userID, itemID, models.UpdateCartItemRequest{Quantity: 0})
	requireKind(t, err, apperrors.KindValidation)

	// Quantity untouched by the rejected update.
	resp, err = svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Items[0].Quantity)
}

func TestUpdateItem_UnknownItemNotFound(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.UpdateItem(context.Background(), uuid.New(), uuid.New(), models.UpdateCartItemRequest{Quantity: 1})
	requireKind(t, err, apperrors.KindNotFound)
}

func TestUpdateItem_CannotTouchAnotherUsersCart(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Monitor", "199.00")
	owner := uuid.New()
	intruder := uuid.New()

	resp, err := svc.AddItem(context.Background(), owner, models.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  1,
	})
	require.NoError(t, err)
	itemID := resp.Items[0].ItemID

	_, err = svc.UpdateItem(context.Background(), intruder, itemID, models.UpdateCartItemRequest{Quantity: 99})
	requireKind(t, err, apperrors.KindNotFound)

	_, err = svc.RemoveItem(context.Background(), intruder, itemID)
	requireKind(t, err, apperrors.KindNotFound)

	// The owner's row is untouched.
	resp, err = svc.GetCart(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Items[0].Quantity)
}

func TestRemoveItem_UnknownItemNotFound(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.RemoveItem(context.Background(), uuid.New(), uuid.New())
	requireKind(t, err, apperrors.KindNotFound)
}

func TestCart_FullLifecycle(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Headphones", "10.00")
	userID := uuid.New()
	ctx := context.Background()

	resp, err := svc.AddItem(ctx, userID, models.AddToCartRequest{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalItems)
	requireDecimal(t, "20.00", resp.TotalPrice)

	resp, err = svc.AddItem(ctx, userID, models.AddToCartRequest{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, 5, resp.TotalItems)
	requireDecimal(t, "50.00", resp.TotalPrice)

	itemID := resp.Items[0].ItemID
	resp, err = svc.UpdateItem(ctx, userID, itemID, models.UpdateCartItemRequest{Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalItems)
	requireDecimal(t, "10.00", resp.TotalPrice)

	resp, err = svc.RemoveItem(ctx, userID, itemID)
	require.NoError(t, err)
	require.Empty(t, resp.Items)
	require.Equal(t, 0, resp.TotalItems)
	requireDecimal(t, "0", resp.TotalPrice)
}

func TestCart_MultipleProductsTotals(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	first := seedProduct(t, products, "Laptop", "999.99")
	second := seedProduct(t, products, "Sleeve", "19.50")
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, userID, models.AddToCartRequest{ProductID: first.ID, Quantity: 1})
	require.NoError(t, err)
	resp, err := svc.AddItem(ctx, userID, models.AddToCartRequest{ProductID: second.ID, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	require.Equal(t, 3, resp.TotalItems)
	requireDecimal(t, "1038.99", resp.TotalPrice)
	requireDecimal(t, "999.99", resp.Items[0].Subtotal)
	requireDecimal(t, "39.00", resp.Items[1].Subtotal)
}

func TestCart_IsolatedPerUser(t *testing.T) {
	svc, products, _ := newCartFixture(t)
	product := seedProduct(t, products, "Charger", "15.00")
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.AddItem(ctx, alice, models.AddToCartRequest{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.GetCart(ctx, bob)
	require.NoError(t, err)
	require.Empty(t, resp.Items)
}
