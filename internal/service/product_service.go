package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
	"catalog-api/internal/storage"
)

// ProductService defines the business logic for product operations,
// including the product-category association and image uploads
type ProductService interface {
	Create(ctx context.Context, name, description, imageURL string) (*domain.Product, error)
	Update(ctx context.Context, id int64, name, description, imageURL string) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, page *repository.Pagination, sortBy repository.ProductSortField, sortOrder repository.SortOrder) ([]*domain.Product, int64, error)
	AssignCategory(ctx context.Context, productID, categoryID int64) (*domain.ProductCategory, error)
	RemoveCategory(ctx context.Context, productID, categoryID int64) error
	ListProductCategories(ctx context.Context, filter repository.ProductCategoryFilter, page *repository.Pagination, sortBy repository.ProductCategorySortField, sortOrder repository.SortOrder) ([]*repository.ProductCategoryView, int64, error)
	UploadImage(ctx context.Context, productID int64, file io.Reader, fileName, contentType string) (*domain.Product, error)
}

type productService struct {
	productRepo         repository.ProductRepository
	categoryRepo        repository.CategoryRepository
	productCategoryRepo repository.ProductCategoryRepository
	imageStorage        storage.ImageStorage
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	productCategoryRepo repository.ProductCategoryRepository,
	imageStorage storage.ImageStorage,
) ProductService {
	return &productService{
		productRepo:         productRepo,
		categoryRepo:        categoryRepo,
		productCategoryRepo: productCategoryRepo,
		imageStorage:        imageStorage,
	}
}

// Create persists a new product after checking the name is not taken
func (s *productService) Create(ctx context.Context, name, description, imageURL string) (*domain.Product, error) {
	existing, err := s.productRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check existing product: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrProductAlreadyExists
	}

	product := domain.NewProduct(name, description)
	if imageURL != "" {
		product.AssignImage(domain.NewImage(imageURL))
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update mutates an existing product. Renaming a product to its own
// current name is permitted; colliding with a different product is not.
func (s *productService) Update(ctx context.Context, id int64, name, description, imageURL string) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
		return nil, fmt.Errorf("failed to check existing product: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, repository.ErrProductAlreadyExists
	}

	product.Update(name, description)
	if imageURL != "" {
		product.AssignImage(domain.NewImage(imageURL))
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetByID retrieves a single product
func (s *productService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List delegates to the repository's sorted, paginated query
func (s *productService) List(ctx context.Context, page *repository.Pagination, sortBy repository.ProductSortField, sortOrder repository.SortOrder) ([]*domain.Product, int64, error) {
	return s.productRepo.List(ctx, page, sortBy, sortOrder)
}

// AssignCategory links a product to a category. Both sides must exist and
// the pair must not already be assigned.
func (s *productService) AssignCategory(ctx context.Context, productID, categoryID int64) (*domain.ProductCategory, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	existing, err := s.productCategoryRepo.FindByPair(ctx, productID, categoryID)
	if err != nil && !errors.Is(err, repository.ErrProductCategoryNotFound) {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrProductCategoryAlreadyExists
	}

	pc := domain.NewProductCategory(productID, categoryID)
	if err := s.productCategoryRepo.Create(ctx, pc); err != nil {
		return nil, err
	}

	return pc, nil
}

// RemoveCategory deletes an existing product-category assignment
func (s *productService) RemoveCategory(ctx context.Context, productID, categoryID int64) error {
	if _, err := s.productCategoryRepo.FindByPair(ctx, productID, categoryID); err != nil {
		return err
	}

	return s.productCategoryRepo.Delete(ctx, productID, categoryID)
}

// ListProductCategories delegates to the join-record list query
func (s *productService) ListProductCategories(ctx context.Context, filter repository.ProductCategoryFilter, page *repository.Pagination, sortBy repository.ProductCategorySortField, sortOrder repository.SortOrder) ([]*repository.ProductCategoryView, int64, error) {
	return s.productCategoryRepo.List(ctx, filter, page, sortBy, sortOrder)
}

// UploadImage stores a new image for the product and re-persists it. Any
// previously assigned image is deleted from storage first, best-effort:
// a failed deletion never blocks the new upload.
func (s *productService) UploadImage(ctx context.Context, productID int64, file io.Reader, fileName, contentType string) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !product.Image.IsZero() {
		s.imageStorage.Delete(product.Image.Value())
	}

	imageURL, err := s.imageStorage.Save(ctx, file, fileName, contentType)
	if err != nil {
		return nil, err
	}

	product.AssignImage(domain.NewImage(imageURL))
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
