package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	UpdateRating(ctx context.Context, id string, rating *int) (*Response, error)
}

// CreateRequest is a snack draft as submitted by the entry form,
// after any barcode enrichment has been merged in.
type CreateRequest struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Flavor   string   `json:"flavor"`
	Rating   *int     `json:"rating"`
	Price    *float64 `json:"price"`
	Store    string   `json:"store"`
	UPCCode  string   `json:"upc_code"`
	ImageURL string   `json:"image_url"`
}

type ListRequest struct {
	Query string
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Flavor    string    `json:"flavor"`
	Rating    *int      `json:"rating"`
	Price     *float64  `json:"price,omitempty"`
	Store     *string   `json:"store,omitempty"`
	UPCCode   *string   `json:"upc_code,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrMissingFields = errors.New("missing_required_fields")
	ErrInvalidRating = errors.New("invalid_rating")
	ErrInvalidPrice  = errors.New("invalid_price")
	ErrNotFound      = errors.New("not_found")
)
