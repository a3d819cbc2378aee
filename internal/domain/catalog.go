package domain

// Image is a value object wrapping the URL of a stored product image.
// Two images are equal iff their URLs are equal.
type Image struct {
	value string
}

// NewImage wraps an image URL
func NewImage(value string) Image {
	return Image{value: value}
}

// Value returns the wrapped URL
func (i Image) Value() string {
	return i.value
}

// IsZero reports whether no image has been assigned
func (i Image) IsZero() bool {
	return i.value == ""
}

// Product represents a product in the catalog
type Product struct {
	ID          int64
	Name        string
	Description string
	Image       Image
}

// NewProduct creates an unsaved product; the store assigns the ID on first persistence
func NewProduct(name, description string) *Product {
	return &Product{
		Name:        name,
		Description: description,
	}
}

// Update replaces the product's display fields
func (p *Product) Update(name, description string) {
	p.Name = name
	p.Description = description
}

// AssignImage attaches an image to the product, replacing any previous one
func (p *Product) AssignImage(image Image) {
	p.Image = image
}

// Category represents a product category
type Category struct {
	ID   int64
	Name string
}

// NewCategory creates an unsaved category
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// Update renames the category
func (c *Category) Update(name string) {
	c.Name = name
}

// ProductCategory is a join record linking a product to a category.
// The (ProductID, CategoryID) pair is unique.
type ProductCategory struct {
	ID         int64
	ProductID  int64
	CategoryID int64
}

// NewProductCategory creates an unsaved join record
func NewProductCategory(productID, categoryID int64) *ProductCategory {
	return &ProductCategory{
		ProductID:  productID,
		CategoryID: categoryID,
	}
}
