package repository

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/snackcat/internal/snack/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, snack *domain.Snack) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO snacks (id, name, brand, flavor, rating, price, store, upc_code, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snack.ID,
		snack.Name,
		snack.Brand,
		snack.Flavor,
		snack.Rating,
		snack.Price,
		snack.Store,
		snack.UPCCode,
		snack.ImageURL,
		snack.CreatedAt,
		snack.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Snack, error) {
	var s domain.Snack
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Snack, error) {
	var items []domain.Snack
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, brand, flavor, rating, price, store, upc_code, image_url, created_at, updated_at
		 FROM snacks ORDER BY created_at DESC, id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateRating(ctx context.Context, db *gorm.DB, id int64, rating *int) error {
	// Single-column write: concurrent updates to other fields are
	// never clobbered, and retrying the same rating is a no-op.
	return db.WithContext(ctx).Exec(
		`UPDATE snacks SET rating = ?, updated_at = ? WHERE id = ?`,
		rating,
		time.Now().UTC(),
		id,
	).Error
}
