package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
)

var (
	ErrProductCategoryNotFound      = errors.New("product category assignment not found")
	ErrProductCategoryAlreadyExists = errors.New("product is already assigned to this category")
)

// ProductCategoryView is the denormalized read model returned by the list
// query; the product and category names come from the joined tables.
type ProductCategoryView struct {
	ID           int64
	ProductID    int64
	ProductName  string
	CategoryID   int64
	CategoryName string
}

// ProductCategoryFilter narrows the list query. Both fields are optional
// and combine independently.
type ProductCategoryFilter struct {
	ProductID  *int64
	CategoryID *int64
}

// ProductCategoryRepository defines the interface for the join-record data access
type ProductCategoryRepository interface {
	Create(ctx context.Context, pc *domain.ProductCategory) error
	Delete(ctx context.Context, productID, categoryID int64) error
	FindByPair(ctx context.Context, productID, categoryID int64) (*domain.ProductCategory, error)
	List(ctx context.Context, filter ProductCategoryFilter, page *Pagination, sortBy ProductCategorySortField, sortOrder SortOrder) ([]*ProductCategoryView, int64, error)
}

type productCategoryRepository struct {
	db *sql.DB
}

// NewProductCategoryRepository creates a new instance of ProductCategoryRepository
func NewProductCategoryRepository(db *sql.DB) ProductCategoryRepository {
	return &productCategoryRepository{db: db}
}

// Create inserts a new join record and assigns the store-generated identity
func (r *productCategoryRepository) Create(ctx context.Context, pc *domain.ProductCategory) error {
	query := `
		INSERT INTO product_categories (product_id, category_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, pc.ProductID, pc.CategoryID).Scan(&pc.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProductCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create product category: %w", err)
	}

	return nil
}

// Delete hard-deletes the join record for the given pair
func (r *productCategoryRepository) Delete(ctx context.Context, productID, categoryID int64) error {
	query := `DELETE FROM product_categories WHERE product_id = $1 AND category_id = $2`

	result, err := r.db.ExecContext(ctx, query, productID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete product category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductCategoryNotFound
	}

	return nil
}

// FindByPair retrieves the join record for the given pair
func (r *productCategoryRepository) FindByPair(ctx context.Context, productID, categoryID int64) (*domain.ProductCategory, error) {
	query := `
		SELECT id, product_id, category_id
		FROM product_categories
		WHERE product_id = $1 AND category_id = $2
	`

	pc := &domain.ProductCategory{}
	err := r.db.QueryRowContext(ctx, query, productID, categoryID).Scan(&pc.ID, &pc.ProductID, &pc.CategoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find product category: %w", err)
	}

	return pc, nil
}

// List retrieves the join records projected with the joined product and
// category names, with optional equality filters, sorting (including the
// joined name columns), and pagination. The total count reflects the
// filters but not the page window.
func (r *productCategoryRepository) List(ctx context.Context, filter ProductCategoryFilter, page *Pagination, sortBy ProductCategorySortField, sortOrder SortOrder) ([]*ProductCategoryView, int64, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	appendCondition := func(column string, value int64) {
		if whereClause == "" {
			whereClause = "WHERE "
		} else {
			whereClause += " AND "
		}
		whereClause += fmt.Sprintf("%s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if filter.ProductID != nil {
		appendCondition("pc.product_id", *filter.ProductID)
	}
	if filter.CategoryID != nil {
		appendCondition("pc.category_id", *filter.CategoryID)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM product_categories pc %s", whereClause)
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count product categories: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT pc.id, pc.product_id, p.name, pc.category_id, c.name
		FROM product_categories pc
		JOIN products p ON p.id = pc.product_id
		JOIN categories c ON c.id = pc.category_id
		%s
		ORDER BY %s %s
	`, whereClause, sortBy.Column(), sortOrder)

	if page != nil {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, page.Limit(), page.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list product categories: %w", err)
	}
	defer rows.Close()

	views := []*ProductCategoryView{}
	for rows.Next() {
		v := &ProductCategoryView{}
		if err := rows.Scan(&v.ID, &v.ProductID, &v.ProductName, &v.CategoryID, &v.CategoryName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product category: %w", err)
		}
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating product categories: %w", err)
	}

	return views, total, nil
}
