package domain

import "testing"

func TestImageEquality(t *testing.T) {
	a := NewImage("/images/products/a.jpg")
	b := NewImage("/images/products/a.jpg")
	c := NewImage("/images/products/c.jpg")

	if a != b {
		t.Error("Images with the same URL should be equal")
	}
	if a == c {
		t.Error("Images with different URLs should not be equal")
	}
}

func TestImageIsZero(t *testing.T) {
	if !NewImage("").IsZero() {
		t.Error("An empty image should be zero")
	}

	var unset Image
	if !unset.IsZero() {
		t.Error("The zero value should be zero")
	}

	if NewImage("/images/products/a.jpg").IsZero() {
		t.Error("A populated image should not be zero")
	}
}

func TestProductLifecycle(t *testing.T) {
	product := NewProduct("Kettle", "boils water")
	if product.ID != 0 {
		t.Error("Unsaved products carry no identity")
	}
	if !product.Image.IsZero() {
		t.Error("New products carry no image")
	}

	product.Update("Electric Kettle", "boils water quickly")
	if product.Name != "Electric Kettle" || product.Description != "boils water quickly" {
		t.Errorf("Update gave name %q, description %q", product.Name, product.Description)
	}

	product.AssignImage(NewImage("/images/products/kettle.jpg"))
	if product.Image.Value() != "/images/products/kettle.jpg" {
		t.Errorf("AssignImage gave %q", product.Image.Value())
	}

	// A later assignment replaces the earlier one
	product.AssignImage(NewImage("/images/products/kettle2.jpg"))
	if product.Image.Value() != "/images/products/kettle2.jpg" {
		t.Errorf("Reassignment gave %q", product.Image.Value())
	}
}

func TestCategoryUpdate(t *testing.T) {
	category := NewCategory("Diary")
	category.Update("Dairy")
	if category.Name != "Dairy" {
		t.Errorf("Update gave name %q", category.Name)
	}
}

func TestNewProductCategory(t *testing.T) {
	pc := NewProductCategory(3, 7)
	if pc.ProductID != 3 || pc.CategoryID != 7 {
		t.Errorf("Pair = (%d, %d), want (3, 7)", pc.ProductID, pc.CategoryID)
	}
	if pc.ID != 0 {
		t.Error("Unsaved join records carry no identity")
	}
}
