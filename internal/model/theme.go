package model

import "time"

// DefaultThemeID is the theme that can never be deleted.
const DefaultThemeID = "default"

// Theme describes a storefront colour scheme and its seasonal effects.
type Theme struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	PrimaryColor    string    `json:"primaryColor" db:"primary_color"`
	SecondaryColor  string    `json:"secondaryColor" db:"secondary_color"`
	AccentColor     string    `json:"accentColor" db:"accent_color"`
	EnableSnow      bool      `json:"enableSnow" db:"enable_snow"`
	EnableParticles bool      `json:"enableParticles" db:"enable_particles"`
	BackgroundImage string    `json:"backgroundImage" db:"background_image"`
	Description     string    `json:"description" db:"description"`
	Active          bool      `json:"active" db:"active"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultTheme returns the built-in theme seeded at startup.
func DefaultTheme() Theme {
	return Theme{
		ID:             DefaultThemeID,
		Name:           "Default",
		PrimaryColor:   "#dc2626",
		SecondaryColor: "#ffffff",
		AccentColor:    "#3b82f6",
		Description:    "Default theme",
		Active:         true,
	}
}

// ChristmasMode is the seasonal toggle singleton.
type ChristmasMode struct {
	Enabled           bool      `json:"enabled" db:"enabled"`
	Discount          int       `json:"discount" db:"discount"`
	SnowflakesEnabled bool      `json:"snowflakesEnabled" db:"snowflakes_enabled"`
	UpdatedBy         string    `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// ChristmasUpdate is the toggle payload. Nil fields are left untouched.
type ChristmasUpdate struct {
	Enabled           *bool `json:"enabled,omitempty"`
	Discount          *int  `json:"discount,omitempty"`
	SnowflakesEnabled *bool `json:"snowflakesEnabled,omitempty"`
}

// Promo is a newsletter promotion.
type Promo struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	DiscountCode    string    `json:"discountCode" db:"discount_code"`
	DiscountPercent int       `json:"discountPercent" db:"discount_percent"`
	ValidTill       string    `json:"validTill,omitempty" db:"valid_till"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
