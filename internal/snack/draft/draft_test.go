package draft

import (
	"testing"

	lookupdomain "github.com/smallbiznis/snackcat/internal/lookup/domain"
	"github.com/smallbiznis/snackcat/internal/snack/domain"
	"github.com/stretchr/testify/assert"
)

func TestMerge_FillsOnlyEmptyFields(t *testing.T) {
	d := domain.CreateRequest{
		Name:    "Mochi",
		UPCCode: "4901777391234",
	}
	result := lookupdomain.Result{
		Found:    true,
		Name:     "Matcha Sparkling Drink",
		Brand:    "Ito En",
		Flavor:   "Matcha Yuzu",
		ImageURL: "https://example.com/matcha.jpg",
	}

	merged := Merge(d, result)

	// Typed values win; gaps adopt looked-up values.
	assert.Equal(t, "Mochi", merged.Name)
	assert.Equal(t, "Ito En", merged.Brand)
	assert.Equal(t, "Matcha Yuzu", merged.Flavor)
	assert.Equal(t, "https://example.com/matcha.jpg", merged.ImageURL)
	assert.Equal(t, "4901777391234", merged.UPCCode)
}

func TestMerge_NotFoundLeavesDraftUnchanged(t *testing.T) {
	d := domain.CreateRequest{Name: "Mochi", UPCCode: "0000000000000"}

	merged := Merge(d, lookupdomain.Result{Found: false, Name: "Ignored"})
	assert.Equal(t, d, merged)
}

func TestMerge_WhitespaceCountsAsEmpty(t *testing.T) {
	d := domain.CreateRequest{Name: "   "}
	result := lookupdomain.Result{Found: true, Name: "Shrimp Chips"}

	merged := Merge(d, result)
	assert.Equal(t, "Shrimp Chips", merged.Name)
}

func TestMerge_NeverTouchesUserTerritory(t *testing.T) {
	rating := 3
	price := 2.50
	d := domain.CreateRequest{
		Rating: &rating,
		Price:  &price,
		Store:  "Mitsuwa",
	}
	result := lookupdomain.Result{Found: true, Name: "X", Brand: "Y", Flavor: "Z"}

	merged := Merge(d, result)
	assert.Equal(t, &rating, merged.Rating)
	assert.Equal(t, &price, merged.Price)
	assert.Equal(t, "Mitsuwa", merged.Store)
}
