package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

// In-memory catalog repositories for testing

type mockCategoryRepository struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		categories: make(map[int64]*domain.Category),
		nextID:     1,
	}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	for _, c := range m.categories {
		if c.Name == category.Name {
			return repository.ErrCategoryAlreadyExists
		}
	}
	category.ID = m.nextID
	m.nextID++
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if _, exists := m.categories[category.ID]; !exists {
		return repository.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, exists := m.categories[id]
	if !exists {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (m *mockCategoryRepository) List(ctx context.Context, searchTerm string, page *repository.Pagination, sortBy repository.CategorySortField, sortOrder repository.SortOrder) ([]*domain.Category, int64, error) {
	var all []*domain.Category
	for _, c := range m.categories {
		if searchTerm == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(searchTerm)) {
			all = append(all, c)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		var less bool
		if sortBy == repository.CategorySortName {
			less = all[i].Name < all[j].Name
		} else {
			less = all[i].ID < all[j].ID
		}
		if sortOrder == repository.SortOrderDesc {
			return !less
		}
		return less
	})

	total := int64(len(all))
	if page != nil {
		all = paginate(all, page)
	}
	return all, total, nil
}

type mockProductRepository struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[int64]*domain.Product),
		nextID:   1,
	}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	for _, p := range m.products {
		if p.Name == product.Name {
			return repository.ErrProductAlreadyExists
		}
	}
	product.ID = m.nextID
	m.nextID++
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, exists := m.products[product.ID]; !exists {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, page *repository.Pagination, sortBy repository.ProductSortField, sortOrder repository.SortOrder) ([]*domain.Product, int64, error) {
	var all []*domain.Product
	for _, p := range m.products {
		all = append(all, p)
	}

	sort.Slice(all, func(i, j int) bool {
		var less bool
		switch sortBy {
		case repository.ProductSortName:
			less = all[i].Name < all[j].Name
		case repository.ProductSortDescription:
			less = all[i].Description < all[j].Description
		default:
			less = all[i].ID < all[j].ID
		}
		if sortOrder == repository.SortOrderDesc {
			return !less
		}
		return less
	})

	total := int64(len(all))
	if page != nil {
		all = paginate(all, page)
	}
	return all, total, nil
}

type mockProductCategoryRepository struct {
	assignments map[int64]*domain.ProductCategory
	nextID      int64
	products    *mockProductRepository
	categories  *mockCategoryRepository
}

func newMockProductCategoryRepository(products *mockProductRepository, categories *mockCategoryRepository) *mockProductCategoryRepository {
	return &mockProductCategoryRepository{
		assignments: make(map[int64]*domain.ProductCategory),
		nextID:      1,
		products:    products,
		categories:  categories,
	}
}

func (m *mockProductCategoryRepository) Create(ctx context.Context, pc *domain.ProductCategory) error {
	for _, existing := range m.assignments {
		if existing.ProductID == pc.ProductID && existing.CategoryID == pc.CategoryID {
			return repository.ErrProductCategoryAlreadyExists
		}
	}
	pc.ID = m.nextID
	m.nextID++
	m.assignments[pc.ID] = pc
	return nil
}

func (m *mockProductCategoryRepository) Delete(ctx context.Context, productID, categoryID int64) error {
	for id, pc := range m.assignments {
		if pc.ProductID == productID && pc.CategoryID == categoryID {
			delete(m.assignments, id)
			return nil
		}
	}
	return repository.ErrProductCategoryNotFound
}

func (m *mockProductCategoryRepository) FindByPair(ctx context.Context, productID, categoryID int64) (*domain.ProductCategory, error) {
	for _, pc := range m.assignments {
		if pc.ProductID == productID && pc.CategoryID == categoryID {
			return pc, nil
		}
	}
	return nil, repository.ErrProductCategoryNotFound
}

func (m *mockProductCategoryRepository) List(ctx context.Context, filter repository.ProductCategoryFilter, page *repository.Pagination, sortBy repository.ProductCategorySortField, sortOrder repository.SortOrder) ([]*repository.ProductCategoryView, int64, error) {
	var all []*repository.ProductCategoryView
	for _, pc := range m.assignments {
		if filter.ProductID != nil && pc.ProductID != *filter.ProductID {
			continue
		}
		if filter.CategoryID != nil && pc.CategoryID != *filter.CategoryID {
			continue
		}

		view := &repository.ProductCategoryView{
			ID:         pc.ID,
			ProductID:  pc.ProductID,
			CategoryID: pc.CategoryID,
		}
		if p, err := m.products.FindByID(ctx, pc.ProductID); err == nil {
			view.ProductName = p.Name
		}
		if c, err := m.categories.FindByID(ctx, pc.CategoryID); err == nil {
			view.CategoryName = c.Name
		}
		all = append(all, view)
	}

	sort.Slice(all, func(i, j int) bool {
		var less bool
		switch sortBy {
		case repository.ProductCategorySortProductID:
			less = all[i].ProductID < all[j].ProductID
		case repository.ProductCategorySortCategoryID:
			less = all[i].CategoryID < all[j].CategoryID
		case repository.ProductCategorySortProductName:
			less = all[i].ProductName < all[j].ProductName
		case repository.ProductCategorySortCategoryName:
			less = all[i].CategoryName < all[j].CategoryName
		default:
			less = all[i].ID < all[j].ID
		}
		if sortOrder == repository.SortOrderDesc {
			return !less
		}
		return less
	})

	total := int64(len(all))
	if page != nil {
		all = paginate(all, page)
	}
	return all, total, nil
}

func paginate[T any](items []T, page *repository.Pagination) []T {
	offset := page.Offset()
	if offset >= len(items) {
		return nil
	}
	end := offset + page.Limit()
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// mockImageStorage records saves and deletes without touching disk
type mockImageStorage struct {
	saveCount int
	saved     []string
	deleted   []string
	saveErr   error
}

func newMockImageStorage() *mockImageStorage {
	return &mockImageStorage{}
}

func (m *mockImageStorage) Save(ctx context.Context, file io.Reader, fileName, contentType string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saveCount++
	url := fmt.Sprintf("/images/products/mock-%d%s", m.saveCount, filepath.Ext(fileName))
	m.saved = append(m.saved, url)
	return url, nil
}

func (m *mockImageStorage) Delete(imageURL string) bool {
	m.deleted = append(m.deleted, imageURL)
	return true
}
