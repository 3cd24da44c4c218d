package domain

import (
	"context"
	"errors"
)

// Result is the enrichment payload for a product code. It is
// ephemeral: a best-effort partial draft, never persisted directly.
// All fields may be empty even when Found is true.
type Result struct {
	Found    bool   `json:"found"`
	Name     string `json:"name,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Flavor   string `json:"flavor,omitempty"`
	Size     string `json:"size,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Provider resolves a product code to a Result. Implementations must
// tolerate any non-blank input string.
type Provider interface {
	Lookup(ctx context.Context, code string) (*Result, error)
}

// Service fronts the provider with input validation and caching.
type Service interface {
	Lookup(ctx context.Context, code string) (*Result, error)
}

var (
	ErrMissingCode = errors.New("missing_code")
	ErrUnavailable = errors.New("lookup_unavailable")
)
