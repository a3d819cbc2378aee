package repository

import "strings"

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

// ParseSortOrder maps a query-string direction to a SortOrder; anything
// unrecognized falls back to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortOrderDesc)) {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Pagination is a 1-based page window. A nil *Pagination means the caller
// wants the full, unpaginated result set.
type Pagination struct {
	PageNumber     int
	RecordsPerPage int
}

// Offset computes the number of records to skip before the requested page.
// Page 3 with 10 records per page skips 20.
func (p Pagination) Offset() int {
	return (p.PageNumber - 1) * p.RecordsPerPage
}

// Limit returns the page size
func (p Pagination) Limit() int {
	return p.RecordsPerPage
}

// ProductSortField enumerates the sortable columns of the product listing
type ProductSortField int

const (
	ProductSortID ProductSortField = iota
	ProductSortName
	ProductSortDescription
)

// ParseProductSortField resolves a requested sort field. Unknown or empty
// input falls back to the ID so pagination stays well-defined.
func ParseProductSortField(s string) ProductSortField {
	switch strings.ToLower(s) {
	case "name":
		return ProductSortName
	case "description":
		return ProductSortDescription
	default:
		return ProductSortID
	}
}

// Column maps the field to its SQL column. User input never reaches the
// query text directly.
func (f ProductSortField) Column() string {
	switch f {
	case ProductSortName:
		return "name"
	case ProductSortDescription:
		return "description"
	default:
		return "id"
	}
}

// CategorySortField enumerates the sortable columns of the category listing
type CategorySortField int

const (
	CategorySortID CategorySortField = iota
	CategorySortName
)

// ParseCategorySortField resolves a requested sort field, falling back to ID
func ParseCategorySortField(s string) CategorySortField {
	if strings.EqualFold(s, "name") {
		return CategorySortName
	}
	return CategorySortID
}

// Column maps the field to its SQL column
func (f CategorySortField) Column() string {
	if f == CategorySortName {
		return "name"
	}
	return "id"
}

// ProductCategorySortField enumerates the sortable columns of the
// product-category listing. The name fields live on the joined tables, so
// the list query always joins products and categories.
type ProductCategorySortField int

const (
	ProductCategorySortID ProductCategorySortField = iota
	ProductCategorySortProductID
	ProductCategorySortCategoryID
	ProductCategorySortProductName
	ProductCategorySortCategoryName
)

// ParseProductCategorySortField resolves a requested sort field, falling
// back to ID
func ParseProductCategorySortField(s string) ProductCategorySortField {
	switch strings.ToLower(s) {
	case "productid", "product_id":
		return ProductCategorySortProductID
	case "categoryid", "category_id":
		return ProductCategorySortCategoryID
	case "productname", "product_name":
		return ProductCategorySortProductName
	case "categoryname", "category_name":
		return ProductCategorySortCategoryName
	default:
		return ProductCategorySortID
	}
}

// Column maps the field to its (possibly joined) SQL column
func (f ProductCategorySortField) Column() string {
	switch f {
	case ProductCategorySortProductID:
		return "pc.product_id"
	case ProductCategorySortCategoryID:
		return "pc.category_id"
	case ProductCategorySortProductName:
		return "p.name"
	case ProductCategorySortCategoryName:
		return "c.name"
	default:
		return "pc.id"
	}
}
