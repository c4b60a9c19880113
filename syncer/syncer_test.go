package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/search"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

// memoryIndex is an in-memory DocumentIndex keyed by document id.
type memoryIndex struct {
	mu            sync.Mutex
	docs          map[uuid.UUID]models.ProductSearchDocument
	upsertErr     error
	deleteAllErr  error
	upsertBatches int
}

func newMemoryIndex() *memoryIndex {
	return &memoryIndex{docs: make(map[uuid.UUID]models.ProductSearchDocument)}
}

func (m *memoryIndex) UpsertDocuments(_ context.Context, docs []models.ProductSearchDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upsertBatches++
	for _, doc := range docs {
		m.docs[doc.ID] = doc
	}
	return nil
}

func (m *memoryIndex) DeleteDocument(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *memoryIndex) DeleteAllAndWait(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteAllErr != nil {
		return m.deleteAllErr
	}
	m.docs = make(map[uuid.UUID]models.ProductSearchDocument)
	return nil
}

func (m *memoryIndex) Search(context.Context, search.Query) (*search.Result, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryIndex) EnsureSettings(context.Context) error { return nil }

func (m *memoryIndex) snapshot() map[uuid.UUID]models.ProductSearchDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uuid.UUID]models.ProductSearchDocument, len(m.docs))
	for id, doc := range m.docs {
		out[id] = doc
	}
	return out
}

func (m *memoryIndex) has(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[id]
	return ok
}

var _ search.DocumentIndex = (*memoryIndex)(nil)

// pagingProductStore serves List pages from a fixed slice in creation order.
type pagingProductStore struct {
	products []models.Product
}

func (s *pagingProductStore) Create(context.Context, *models.Product) error {
	return errors.New("not implemented")
}

func (s *pagingProductStore) BulkCreate(context.Context, []models.Product) ([]models.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *pagingProductStore) FindByID(context.Context, uuid.UUID) (*models.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *pagingProductStore) List(_ context.Context, filter store.ProductFilter) ([]models.Product, int64, error) {
	filter = filter.Normalize()
	var matched []models.Product
	for _, p := range s.products {
		if p.IsActive == *filter.IsActive {
			matched = append(matched, p)
		}
	}
	total := int64(len(matched))
	start := filter.Offset()
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *pagingProductStore) Update(context.Context, uuid.UUID, models.UpdateProductRequest) (*models.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *pagingProductStore) SoftDelete(context.Context, uuid.UUID) (bool, error) {
	return false, errors.New("not implemented")
}

var _ store.ProductStore = (*pagingProductStore)(nil)

func makeProduct(name string, active bool) models.Product {
	return models.Product{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		Name:       name,
		Price:      decimal.RequireFromString("9.99"),
		IsActive:   active,
	}
}

func TestReindexAll_RebuildsFromCatalog(t *testing.T) {
	products := &pagingProductStore{products: []models.Product{
		makeProduct("a", true),
		makeProduct("b", true),
		makeProduct("c", true),
		makeProduct("d", true),
		makeProduct("e", true),
		makeProduct("hidden", false),
	}}
	index := newMemoryIndex()

	// A stale document that no longer exists in the catalog.
	stale := models.ProductSearchDocument{ID: uuid.New(), Name: "stale"}
	require.NoError(t, index.UpsertDocuments(context.Background(), []models.ProductSearchDocument{stale}))
	index.upsertBatches = 0

	s := New(index, products, WithBatchSize(2))
	count, err := s.ReindexAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, count)

	docs := index.snapshot()
	require.Len(t, docs, 5)
	require.NotContains(t, docs, stale.ID)
	for _, p := range products.products {
		if p.IsActive {
			require.Contains(t, docs, p.ID)
		} else {
			require.NotContains(t, docs, p.ID)
		}
	}
	// 5 products at batch size 2 means 3 pushes.
	require.Equal(t, 3, index.upsertBatches)
}

func TestReindexAll_Idempotent(t *testing.T) {
	products := &pagingProductStore{products: []models.Product{
		makeProduct("a", true),
		makeProduct("b", true),
	}}
	index := newMemoryIndex()
	s := New(index, products, WithBatchSize(10))

	count, err := s.ReindexAll(context.Background())
	require.NoError(t, err)
	first := index.snapshot()

	countAgain, err := s.ReindexAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, count, countAgain)
	require.Equal(t, first, index.snapshot())
}

func TestReindexAll_AbortsWhenWipeFails(t *testing.T) {
	products := &pagingProductStore{products: []models.Product{makeProduct("a", true)}}
	index := newMemoryIndex()
	index.deleteAllErr = errors.New("engine unavailable")

	existing := models.ProductSearchDocument{ID: uuid.New(), Name: "keep"}
	index.docs[existing.ID] = existing

	s := New(index, products)
	count, err := s.ReindexAll(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, count)

	// Nothing was pushed and the old contents survived.
	require.Equal(t, 0, index.upsertBatches)
	require.Contains(t, index.snapshot(), existing.ID)
}

func TestSyncAll_DoesNotWipeFirst(t *testing.T) {
	active := makeProduct("a", true)
	products := &pagingProductStore{products: []models.Product{active}}
	index := newMemoryIndex()

	stale := models.ProductSearchDocument{ID: uuid.New(), Name: "stale"}
	index.docs[stale.ID] = stale

	s := New(index, products)
	count, err := s.SyncAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	docs := index.snapshot()
	require.Contains(t, docs, active.ID)
	require.Contains(t, docs, stale.ID)
}

func TestSyncAll_StopsOnPushFailure(t *testing.T) {
	products := &pagingProductStore{products: []models.Product{makeProduct("a", true)}}
	index := newMemoryIndex()
	index.upsertErr = errors.New("engine unavailable")

	s := New(index, products)
	count, err := s.SyncAll(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, count)
}

func TestSyncUpsert_EventuallyReachesIndex(t *testing.T) {
	product := makeProduct("async", true)
	index := newMemoryIndex()
	s := New(index, &pagingProductStore{})

	s.SyncUpsert(&product)
	require.Eventually(t, func() bool { return index.has(product.ID) },
		2*time.Second, 10*time.Millisecond)

	doc := index.snapshot()[product.ID]
	require.Equal(t, product.Name, doc.Name)
	require.Equal(t, product.CategoryID, doc.CategoryID)
}

func TestSyncDelete_EventuallyRemovesDocument(t *testing.T) {
	product := makeProduct("doomed", true)
	index := newMemoryIndex()
	index.docs[product.ID] = models.SearchDocumentFromProduct(&product)

	s := New(index, &pagingProductStore{})
	s.SyncDelete(product.ID)
	require.Eventually(t, func() bool { return !index.has(product.ID) },
		2*time.Second, 10*time.Millisecond)
}

func TestSyncUpsert_IndexFailureDoesNotPanic(t *testing.T) {
	product := makeProduct("best-effort", true)
	index := newMemoryIndex()
	index.upsertErr = errors.New("engine unavailable")

	s := New(index, &pagingProductStore{}, WithPushTimeout(100*time.Millisecond))
	s.SyncUpsert(&product)

	// Give the goroutine time to run; the failure is logged and swallowed.
	time.Sleep(200 * time.Millisecond)
	require.False(t, index.has(product.ID))
}

func TestSearchDocument_CoalescesNilDescription(t *testing.T) {
	product := makeProduct("plain", true)
	doc := models.SearchDocumentFromProduct(&product)
	require.Equal(t, "", doc.Description)

	description := "with text"
	product.Description = &description
	doc = models.SearchDocumentFromProduct(&product)
	require.Equal(t, "with text", doc.Description)
}
