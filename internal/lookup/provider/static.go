package provider

import (
	"context"

	"github.com/smallbiznis/snackcat/internal/lookup/domain"
)

// Static serves lookups from an in-memory table. It is the default
// provider when no external lookup API is configured, so the
// add-snack flow works out of the box.
type Static struct {
	table map[string]domain.Result
}

func NewStatic() *Static {
	return &Static{
		table: map[string]domain.Result{
			"4901777391234": {
				Found:    true,
				Name:     "Matcha Sparkling Drink",
				Brand:    "Ito En",
				Flavor:   "Matcha Yuzu",
				Size:     "350ml",
				ImageURL: "https://via.placeholder.com/400x225?text=Matcha+Sparkling",
			},
			"9999999999999": {
				Found:    true,
				Name:     "Strawberry Milk Soda",
				Brand:    "Calpico",
				Flavor:   "Strawberry",
				Size:     "500ml",
				ImageURL: "https://via.placeholder.com/400x225?text=Strawberry+Soda",
			},
		},
	}
}

func (p *Static) Lookup(ctx context.Context, code string) (*domain.Result, error) {
	if result, ok := p.table[code]; ok {
		return &result, nil
	}
	return &domain.Result{Found: false}, nil
}
