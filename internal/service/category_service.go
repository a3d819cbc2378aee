package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

// CategoryService defines the business logic for category operations
type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context, searchTerm string, page *repository.Pagination, sortBy repository.CategorySortField, sortOrder repository.SortOrder) ([]*domain.Category, int64, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// Create persists a new category after checking the name is not taken
func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrCategoryAlreadyExists
	}

	category := domain.NewCategory(name)
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Update renames an existing category. Renaming a category to its own
// current name is permitted; colliding with a different category is not.
func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, repository.ErrCategoryAlreadyExists
	}

	category.Update(name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetByID retrieves a single category
func (s *categoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// List delegates to the repository's filtered, sorted, paginated query
func (s *categoryService) List(ctx context.Context, searchTerm string, page *repository.Pagination, sortBy repository.CategorySortField, sortOrder repository.SortOrder) ([]*domain.Category, int64, error) {
	return s.categoryRepo.List(ctx, searchTerm, page, sortBy, sortOrder)
}
