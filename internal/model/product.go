package model

import "time"

// Product sizes accepted by the catalogue.
var ProductSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Product represents an item in the storefront catalogue.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Categories  []string  `json:"category" db:"categories"`
	Sizes       []string  `json:"sizes" db:"sizes"`
	Colors      []string  `json:"colors" db:"colors"`
	Images      []string  `json:"images" db:"images"`
	Stock       int       `json:"stock" db:"stock"`
	Featured    bool      `json:"featured" db:"featured"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductInput is the request payload for creating or updating a product.
// On update, zero-value fields are ignored except Stock and Featured, which
// use pointers to distinguish "absent" from "zero".
type ProductInput struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	Categories  []string `json:"category,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Images      []string `json:"images,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// ProductFilter narrows a catalogue listing.
type ProductFilter struct {
	Category     string
	FeaturedOnly bool
	Search       string
}

// Category is a storefront category as exposed by the API.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
