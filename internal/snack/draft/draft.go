// Package draft assembles a snack draft from user input and a barcode
// lookup result before the entry is persisted.
package draft

import (
	"strings"

	lookupdomain "github.com/smallbiznis/snackcat/internal/lookup/domain"
	"github.com/smallbiznis/snackcat/internal/snack/domain"
)

// Merge fills the gaps in a draft from a lookup result: a field the
// user already typed always wins, an empty field adopts the looked-up
// value. Rating, price, store, and the product code itself are user
// territory and are never touched. A not-found result returns the
// draft unchanged; the caller tells "not found" apart from "nothing
// to fill" via result.Found.
func Merge(d domain.CreateRequest, result lookupdomain.Result) domain.CreateRequest {
	if !result.Found {
		return d
	}

	d.Name = fillGap(d.Name, result.Name)
	d.Brand = fillGap(d.Brand, result.Brand)
	d.Flavor = fillGap(d.Flavor, result.Flavor)
	d.ImageURL = fillGap(d.ImageURL, result.ImageURL)
	return d
}

func fillGap(current, incoming string) string {
	if strings.TrimSpace(current) != "" {
		return current
	}
	return incoming
}
