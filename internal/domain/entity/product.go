package entity

import (
	"strings"
)

// Category is the product category enumeration.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryHome        Category = "Home"
	CategoryBeauty      Category = "Beauty"
	CategorySports      Category = "Sports"
	CategoryBooks       Category = "Books"
)

// Categories lists every selectable category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryHome,
	CategoryBeauty,
	CategorySports,
	CategoryBooks,
}

// RequiresBookDetails reports whether author and genre are mandatory.
func (c Category) RequiresBookDetails() bool {
	return c == CategoryBooks
}

// ProductStatus is either active or inactive.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// LowStockThreshold marks stock counts rendered as a warning.
const LowStockThreshold = 10

// Product mirrors the inventory API representation.
type Product struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       Amount           `json:"price"`
	Category    Category         `json:"category"`
	Stock       int              `json:"stock"`
	Status      ProductStatus    `json:"status"`
	Rating      float64          `json:"rating"`
	ImageURL    string           `json:"image"`
	Author      string           `json:"author,omitempty"`
	Genre       string           `json:"genre,omitempty"`
	Media       []PersistedMedia `json:"media,omitempty"`
}

// LowStock reports whether the stock count should be highlighted.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// ProductFilter maps to the inventory list query parameters.
type ProductFilter struct {
	Category Category
	Status   ProductStatus
	Name     string
}

// Matches applies the filter locally. Used where the API ignores a parameter.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Name == "" {
		return true
	}

	needle := strings.ToLower(f.Name)

	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// ProductForm is the edit dialog state. Tabs only group fields; the whole
// form is validated and submitted at once.
type ProductForm struct {
	ID          int64         `form:"id"`
	Name        string        `form:"name" validate:"required,max=200"`
	Description string        `form:"description" validate:"max=5000"`
	Price       float64       `form:"price" validate:"gte=0"`
	Category    Category      `form:"category" validate:"required,oneof=Electronics Clothing Home Beauty Sports Books"`
	Stock       int           `form:"stock" validate:"gte=0"`
	Status      ProductStatus `form:"status" validate:"required,oneof=active inactive"`
	Rating      float64       `form:"rating" validate:"omitempty,gte=1,lte=5"`
	ImageURL    string        `form:"image_url" validate:"omitempty,url"`
	Author      string        `form:"author" validate:"required_if=Category Books"`
	Genre       string        `form:"genre" validate:"required_if=Category Books"`
	Media       []MediaItem   `form:"-" validate:"-"`
}

// IsNew reports whether submitting creates a product.
func (f ProductForm) IsNew() bool {
	return f.ID == 0
}

// NewProductForm returns the defaults of the "Add Product" dialog.
func NewProductForm() ProductForm {
	return ProductForm{
		Category: CategoryElectronics,
		Status:   ProductActive,
	}
}

// FormFromProduct seeds the edit dialog from an existing product.
func FormFromProduct(p Product) ProductForm {
	media := make([]MediaItem, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, m)
	}

	return ProductForm{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Float64(),
		Category:    p.Category,
		Stock:       p.Stock,
		Status:      p.Status,
		Rating:      p.Rating,
		ImageURL:    p.ImageURL,
		Author:      p.Author,
		Genre:       p.Genre,
		Media:       media,
	}
}
