package model

import (
	"time"

	"github.com/google/uuid"
)

// Review sort modes.
const (
	ReviewSortNewest  = "newest"
	ReviewSortHighest = "highest"
)

// ReviewReply is an appended reply on a review. Replies are append-only.
type ReviewReply struct {
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review represents a product review. Ownership for edit and delete is
// established by a case-insensitive match on the stored email.
type Review struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	ProductID        string        `json:"product" db:"product_id"`
	Name             string        `json:"name" db:"name"`
	Email            string        `json:"email" db:"email"`
	Rating           int           `json:"rating" db:"rating"`
	Comment          string        `json:"comment" db:"comment"`
	VerifiedPurchase bool          `json:"verifiedPurchase" db:"verified_purchase"`
	Replies          []ReviewReply `json:"replies"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
}

// ReviewInput is the request payload for creating a review.
type ReviewInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewUpdate is the request payload for editing a review. Email identifies
// the caller; nil fields are left untouched.
type ReviewUpdate struct {
	Email   string  `json:"email"`
	Name    *string `json:"name,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewQuery narrows and orders a review listing.
type ReviewQuery struct {
	Page   int
	Limit  int
	Sort   string
	Rating int // 0 means no rating filter
}

// ReviewPage is a paginated view of a product's reviews plus the aggregate
// breakdown computed over the entire unfiltered set.
type ReviewPage struct {
	Reviews       []Review    `json:"reviews"`
	Total         int         `json:"total"`
	Page          int         `json:"page"`
	Pages         int         `json:"pages"`
	Breakdown     map[int]int `json:"breakdown"`
	AverageRating float64     `json:"averageRating"`
}
