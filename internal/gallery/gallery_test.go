package gallery

import (
	"testing"

	"github.com/smallbiznis/snackcat/internal/snack/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleEntries() []domain.Response {
	return []domain.Response{
		{ID: "1", Name: "Matcha Sparkling Drink", Brand: "Ito En", Flavor: "Matcha Yuzu"},
		{ID: "2", Name: "Strawberry Milk Soda", Brand: "Calpico", Flavor: "Strawberry", Store: strPtr("Mitsuwa")},
		{ID: "3", Name: "Shrimp Chips", Brand: "Calbee", Flavor: "Original", Store: strPtr("H Mart")},
	}
}

func TestFilter_BlankQueryReturnsInputUnchanged(t *testing.T) {
	entries := sampleEntries()

	for _, q := range []string{"", "   ", "\t"} {
		out := Filter(entries, q)
		assert.Equal(t, entries, out)
	}
}

func TestFilter_MatchesAnySearchableField(t *testing.T) {
	entries := sampleEntries()

	byName := Filter(entries, "sparkling")
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byBrand := Filter(entries, "calpico")
	require.Len(t, byBrand, 1)
	assert.Equal(t, "2", byBrand[0].ID)

	byFlavor := Filter(entries, "yuzu")
	require.Len(t, byFlavor, 1)
	assert.Equal(t, "1", byFlavor[0].ID)

	byStore := Filter(entries, "h mart")
	require.Len(t, byStore, 1)
	assert.Equal(t, "3", byStore[0].ID)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	entries := sampleEntries()

	for _, q := range []string{"MATCHA", "matcha", "MaTcHa"} {
		out := Filter(entries, q)
		require.Len(t, out, 1, "query %q", q)
		assert.Equal(t, "1", out[0].ID)
	}
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	entries := sampleEntries()

	out := Filter(entries, "a")
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "2", out[1].ID)
	assert.Equal(t, "3", out[2].ID)
}

func TestFilter_NoMatches(t *testing.T) {
	out := Filter(sampleEntries(), "durian")
	assert.Empty(t, out)
}

func TestFilter_AbsentStoreNeverMatches(t *testing.T) {
	entries := []domain.Response{
		{ID: "1", Name: "Plain", Brand: "B", Flavor: "F"},
	}
	out := Filter(entries, "mitsuwa")
	assert.Empty(t, out)
}

func TestSnapshot_ClearingQueryRestoresFullView(t *testing.T) {
	snap := NewSnapshot(sampleEntries())

	filtered := snap.View("strawberry")
	require.Len(t, filtered, 1)

	full := snap.View("")
	assert.Len(t, full, 3)
}

func TestSnapshot_ReplaceSwapsCatalog(t *testing.T) {
	snap := NewSnapshot(sampleEntries())
	snap.Replace([]domain.Response{
		{ID: "9", Name: "Ramune", Brand: "Hata", Flavor: "Original"},
	})

	out := snap.View("ramune")
	require.Len(t, out, 1)
	assert.Equal(t, "9", out[0].ID)
	assert.Empty(t, snap.View("matcha"))
}
