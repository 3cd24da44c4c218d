package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, snack *Snack) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Snack, error)
	// FindAll returns every entry ordered by created_at descending,
	// ties kept in insertion order.
	FindAll(ctx context.Context, db *gorm.DB) ([]Snack, error)
	// UpdateRating writes only the rating column. A nil rating clears it.
	UpdateRating(ctx context.Context, db *gorm.DB, id int64, rating *int) error
}
