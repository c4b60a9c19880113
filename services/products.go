// Package services holds the business logic between the gin controllers and
// the stores. Storage and index errors are mapped to the application error
// taxonomy here; controllers only translate AppError to HTTP.
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/search"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

// CatalogSyncer is the synchronizer surface the product service drives.
// Satisfied by *syncer.Syncer.
type CatalogSyncer interface {
	SyncUpsert(product *models.Product)
	SyncDelete(productID uuid.UUID)
	BulkSync(ctx context.Context, docs []models.ProductSearchDocument) error
	SyncAll(ctx context.Context) (int, error)
	ReindexAll(ctx context.Context) (int, error)
}

type ProductService interface {
	Create(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ProductResponse, error)
	List(ctx context.Context, filter store.ProductFilter) (*models.PagedResponse[models.ProductResponse], error)
	Update(ctx context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkCreate(ctx context.Context, reqs []models.CreateProductRequest) ([]models.ProductResponse, error)
	Search(ctx context.Context, q search.Query) (*search.Result, error)
	SyncAll(ctx context.Context) (int, error)
	Reindex(ctx context.Context) (int, error)
}

type productService struct {
	products store.ProductStore
	index    search.DocumentIndex
	syncer   CatalogSyncer
}

func NewProductService(products store.ProductStore, index search.DocumentIndex, sync CatalogSyncer) ProductService {
	return &productService{products: products, index: index, syncer: sync}
}

func (s *productService) Create(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product := productFromRequest(req)
	if err := s.products.Create(ctx, &product); err != nil {
		return nil, apperrors.Database(err)
	}

	created, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	// The catalog write is committed; index delivery is best effort.
	s.syncer.SyncUpsert(created)

	resp := models.ProductResponseFrom(created)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*models.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "Product not found")
	}
	resp := models.ProductResponseFrom(product)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter store.ProductFilter) (*models.PagedResponse[models.ProductResponse], error) {
	filter = filter.Normalize()
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	data := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, models.ProductResponseFrom(&products[i]))
	}

	return &models.PagedResponse[models.ProductResponse]{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: store.TotalPages(total, filter.Limit),
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, apperrors.Validation("Price must not be negative")
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, apperrors.Validation("Stock must not be negative")
	}

	updated, err := s.products.Update(ctx, id, req)
	if err != nil {
		return nil, apperrors.FromDB(err, "Product not found")
	}

	s.syncer.SyncUpsert(updated)

	resp := models.ProductResponseFrom(updated)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.products.SoftDelete(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if !deleted {
		return apperrors.NotFound("Product not found")
	}

	s.syncer.SyncDelete(id)
	return nil
}

func (s *productService) BulkCreate(ctx context.Context, reqs []models.CreateProductRequest) ([]models.ProductResponse, error) {
	if len(reqs) == 0 {
		return nil, apperrors.Validation("No products to create")
	}

	entities := make([]models.Product, 0, len(reqs))
	for _, req := range reqs {
		if err := validateProductRequest(req); err != nil {
			return nil, err
		}
		entities = append(entities, productFromRequest(req))
	}

	created, err := s.products.BulkCreate(ctx, entities)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	docs := make([]models.ProductSearchDocument, 0, len(created))
	responses := make([]models.ProductResponse, 0, len(created))
	for i := range created {
		docs = append(docs, models.SearchDocumentFromProduct(&created[i]))
		responses = append(responses, models.ProductResponseFrom(&created[i]))
	}

	// One batch push; unlike per-record sync the caller is told when the
	// index did not take the batch.
	if err := s.syncer.BulkSync(ctx, docs); err != nil {
		return nil, apperrors.SearchIndex(err)
	}
	return responses, nil
}

func (s *productService) Search(ctx context.Context, q search.Query) (*search.Result, error) {
	result, err := s.index.Search(ctx, q)
	if err != nil {
		return nil, apperrors.SearchIndex(err)
	}
	return result, nil
}

func (s *productService) SyncAll(ctx context.Context) (int, error) {
	count, err := s.syncer.SyncAll(ctx)
	if err != nil {
		return count, apperrors.SearchIndex(err)
	}
	return count, nil
}

func (s *productService) Reindex(ctx context.Context) (int, error) {
	count, err := s.syncer.ReindexAll(ctx)
	if err != nil {
		return count, apperrors.SearchIndex(err)
	}
	return count, nil
}

func validateProductRequest(req models.CreateProductRequest) error {
	if req.Name == "" {
		return apperrors.Validation("Product name is required")
	}
	if req.CategoryID == uuid.Nil {
		return apperrors.Validation("Category is required")
	}
	if req.Price.IsNegative() {
		return apperrors.Validation("Price must not be negative")
	}
	if req.Stock < 0 {
		return apperrors.Validation("Stock must not be negative")
	}
	return nil
}

func productFromRequest(req models.CreateProductRequest) models.Product {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return models.Product{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    isActive,
	}
}
