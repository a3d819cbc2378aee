package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-api/internal/domain"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with this name already exists")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context, page *Pagination, sortBy ProductSortField, sortOrder SortOrder) ([]*domain.Product, int64, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func imageParam(p *domain.Product) sql.NullString {
	if p.Image.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: p.Image.Value(), Valid: true}
}

// Create inserts a new product and assigns the store-generated identity
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, description, image)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		imageParam(product),
	).Scan(&product.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update re-persists an existing product
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, image = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		imageParam(product),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, image
		FROM products
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindByName retrieves a product by its natural key, used for the
// application-layer uniqueness check before writes
func (r *productRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `
		SELECT id, name, description, image
		FROM products
		WHERE name = $1
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

func (r *productRepository) scanOne(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}
	var image sql.NullString

	err := row.Scan(&product.ID, &product.Name, &product.Description, &image)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if image.Valid {
		product.Image = domain.NewImage(image.String)
	}

	return product, nil
}

// List retrieves products with sorting and pagination. The total count is
// computed before pagination is applied, and the data query runs exactly
// once after ordering and the page window are composed.
func (r *productRepository) List(ctx context.Context, page *Pagination, sortBy ProductSortField, sortOrder SortOrder) ([]*domain.Product, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, image
		FROM products
		ORDER BY %s %s
	`, sortBy.Column(), sortOrder)

	args := []interface{}{}
	if page != nil {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, page.Limit(), page.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		var image sql.NullString
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &image); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		if image.Valid {
			product.Image = domain.NewImage(image.String)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, total, nil
}
