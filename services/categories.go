package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

type CategoryService interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, filter store.CategoryFilter) (*models.PagedResponse[models.Category], error)
	Update(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categories store.CategoryStore
}

func NewCategoryService(categories store.CategoryStore) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("Category name is required")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	category := models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
	}
	if err := s.categories.Create(ctx, &category); err != nil {
		return nil, apperrors.Database(err)
	}
	return &category, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromDB(err, "Category not found")
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, filter store.CategoryFilter) (*models.PagedResponse[models.Category], error) {
	filter = filter.Normalize()
	categories, total, err := s.categories.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return &models.PagedResponse[models.Category]{
		Data:       categories,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: store.TotalPages(total, filter.Limit),
	}, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categories.Update(ctx, id, req)
	if err != nil {
		return nil, apperrors.FromDB(err, "Category not found")
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.categories.SoftDelete(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if !deleted {
		return apperrors.NotFound("Category not found")
	}
	return nil
}
