package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/snackcat/internal/gallery"
	"github.com/smallbiznis/snackcat/internal/snack/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("snack.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	brand := strings.TrimSpace(req.Brand)
	flavor := strings.TrimSpace(req.Flavor)
	if name == "" || brand == "" || flavor == "" {
		return nil, domain.ErrMissingFields
	}

	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	if req.Price != nil && *req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := time.Now().UTC()
	snack := &domain.Snack{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		Brand:     brand,
		Flavor:    flavor,
		Rating:    req.Rating,
		Price:     req.Price,
		Store:     optionalText(req.Store),
		UPCCode:   optionalText(req.UPCCode),
		ImageURL:  optionalText(req.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, s.db, snack); err != nil {
		return nil, err
	}

	s.log.Info("snack created",
		zap.String("id", snowflake.ID(snack.ID).String()),
		zap.String("name", snack.Name),
	)

	resp := toResponse(snack)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}

	return gallery.Filter(resp, req.Query), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

// UpdateRating persists only the rating column. Applying the same
// rating twice leaves the stored state unchanged, so callers may
// safely retry.
func (s *Service) UpdateRating(ctx context.Context, id string, rating *int) (*domain.Response, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRating(ctx, s.db, item.ID, rating); err != nil {
		return nil, err
	}

	item, err = s.repo.FindByID(ctx, s.db, item.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Snack, error) {
	// An id that does not parse cannot name an existing entry.
	snackID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, snackID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// validateRating is the single range check shared by the creation and
// update paths: nil means "not rated" and is always legal.
func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	switch *rating {
	case 1, 2, 3:
		return nil
	default:
		return domain.ErrInvalidRating
	}
}

func toResponse(s *domain.Snack) domain.Response {
	return domain.Response{
		ID:        snowflake.ID(s.ID).String(),
		Name:      s.Name,
		Brand:     s.Brand,
		Flavor:    s.Flavor,
		Rating:    s.Rating,
		Price:     s.Price,
		Store:     s.Store,
		UPCCode:   s.UPCCode,
		ImageURL:  s.ImageURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func optionalText(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
