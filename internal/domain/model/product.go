package model

import (
	"time"

	"github.com/google/uuid"
)

type ProductID struct {
	uuid.UUID
}

func NewProductID() ProductID {
	return ProductID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseProductID(s string) (ProductID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, err
	}

	return ProductID{UUID: id}, nil
}

func (p ProductID) String() string {
	return p.UUID.String()
}

func (p ProductID) IsZero() bool {
	return p.UUID == uuid.Nil
}

// Product is a catalog item. Specifications only look at its attribute
// values, so two products with equal attributes are interchangeable as far
// as filtering is concerned.
type Product struct {
	ID        ProductID
	Name      string
	Color     Color
	Size      Size
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(name string, color Color, size Size, price int64) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:        NewProductID(),
		Name:      name,
		Color:     color,
		Size:      size,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Product) Validate() error {
	verrs := NewValidationErrors()

	if p.Name == "" {
		verrs.Add("name", "name must not be empty", "REQUIRED")
	}

	if !p.Color.IsValid() {
		verrs.Add("color", "unknown color", "INVALID_ENUM")
	}

	if !p.Size.IsValid() {
		verrs.Add("size", "unknown size", "INVALID_ENUM")
	}

	if p.Price < 0 {
		verrs.Add("price", "price must not be negative", "OUT_OF_RANGE")
	}

	if verrs.HasErrors() {
		return verrs
	}

	return nil
}

type ProductFilter struct {
	Colors   []Color
	Sizes    []Size
	NameLike string
	Page     uint
	Size     uint
	Sort     []string
}

func DefaultProductFilter() ProductFilter {
	return ProductFilter{
		Page: defaultPage,
		Size: defaultSize,
	}
}

type Pagination struct {
	Page        uint
	Size        uint
	TotalItems  uint
	TotalPages  uint
	HasNext     bool
	HasPrevious bool
}

type ProductList struct {
	Products   []*Product
	Pagination Pagination
	Filters    ProductFilter
}
