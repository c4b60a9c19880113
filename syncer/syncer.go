// Package syncer keeps the search index consistent with the catalog. The
// catalog store is the source of truth; the index is a derived view that may
// lag but must never permanently diverge. Per-record pushes are fire-and-forget
// so index downtime cannot fail a committed catalog write; ReindexAll is the
// full reconciliation path.
package syncer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/search"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

const (
	defaultPushTimeout = 5 * time.Second
	defaultWaitTimeout = 30 * time.Second
	defaultBatchSize   = 1000
)

type Syncer struct {
	index    search.DocumentIndex
	products store.ProductStore

	pushTimeout time.Duration
	waitTimeout time.Duration
	batchSize   int
}

type Option func(*Syncer)

// WithBatchSize sets the page size used by ReindexAll and SyncAll.
func WithBatchSize(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithPushTimeout bounds each fire-and-forget push.
func WithPushTimeout(d time.Duration) Option {
	return func(s *Syncer) {
		if d > 0 {
			s.pushTimeout = d
		}
	}
}

// WithWaitTimeout bounds the blocking delete-all step of ReindexAll.
func WithWaitTimeout(d time.Duration) Option {
	return func(s *Syncer) {
		if d > 0 {
			s.waitTimeout = d
		}
	}
}

func New(index search.DocumentIndex, products store.ProductStore, opts ...Option) *Syncer {
	s := &Syncer{
		index:       index,
		products:    products,
		pushTimeout: defaultPushTimeout,
		waitTimeout: defaultWaitTimeout,
		batchSize:   defaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncUpsert pushes the product's document to the index without blocking the
// caller. The catalog write has already committed, so a failed push is logged
// and left for the next reindex to reconcile.
func (s *Syncer) SyncUpsert(product *models.Product) {
	doc := models.SearchDocumentFromProduct(product)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		defer cancel()
		if err := s.index.UpsertDocuments(ctx, []models.ProductSearchDocument{doc}); err != nil {
			log.Printf("⚠️ Failed to sync product %s to search index: %v", doc.ID, err)
		}
	}()
}

// SyncDelete removes the product's document after a catalog soft delete.
// Same non-fatal policy as SyncUpsert.
func (s *Syncer) SyncDelete(productID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		defer cancel()
		if err := s.index.DeleteDocument(ctx, productID); err != nil {
			log.Printf("⚠️ Failed to delete product %s from search index: %v", productID, err)
		}
	}()
}

// BulkSync pushes one batch of documents and surfaces failures to the caller.
// Used by bulk catalog creation, where the caller wants to know the index
// did not take the batch.
func (s *Syncer) BulkSync(ctx context.Context, docs []models.ProductSearchDocument) error {
	return s.index.UpsertDocuments(ctx, docs)
}

// SyncAll pushes every active product without wiping the index first. Returns
// the number of documents pushed.
func (s *Syncer) SyncAll(ctx context.Context) (int, error) {
	return s.pushActiveProducts(ctx)
}

// ReindexAll rebuilds the index from scratch: wipe, then repopulate from the
// catalog in creation order. The wipe is awaited because repopulating a
// half-deleted index would interleave old and new documents. Running it twice
// yields the same final index state.
func (s *Syncer) ReindexAll(ctx context.Context) (int, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.waitTimeout)
	defer cancel()
	if err := s.index.DeleteAllAndWait(waitCtx); err != nil {
		return 0, fmt.Errorf("reindex aborted, index wipe failed: %w", err)
	}
	return s.pushActiveProducts(ctx)
}

// pushActiveProducts pages through active products by created_at ascending,
// a deterministic scan order, until an empty page.
func (s *Syncer) pushActiveProducts(ctx context.Context) (int, error) {
	total := 0
	for page := 1; ; page++ {
		filter := store.ProductFilter{
			SortBy:  "created_at",
			SortDir: "asc",
			Page:    page,
			Limit:   s.batchSize,
		}
		products, _, err := s.products.List(ctx, filter)
		if err != nil {
			return total, fmt.Errorf("list products page %d: %w", page, err)
		}
		if len(products) == 0 {
			return total, nil
		}

		docs := make([]models.ProductSearchDocument, 0, len(products))
		for i := range products {
			docs = append(docs, models.SearchDocumentFromProduct(&products[i]))
		}
		if err := s.index.UpsertDocuments(ctx, docs); err != nil {
			return total, fmt.Errorf("push page %d: %w", page, err)
		}
		total += len(docs)
	}
}
