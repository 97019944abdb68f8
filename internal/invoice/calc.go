// Package invoice implements the form-core computation pipeline: line-item
// totals, tax resolution, invoice numbering, validation, and the submission
// payload builder.
package invoice

import (
	"regexp"
	"strconv"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

// ratePattern gates rate input: digits with at most one decimal point.
var ratePattern = regexp.MustCompile(`^\d*\.?\d*$`)

// ValidRate reports whether s is acceptable rate input. The form discards
// edits that fail this gate instead of storing them.
func ValidRate(s string) bool {
	return ratePattern.MatchString(s)
}

// ParseAmount parses s as a decimal number, treating missing or unparseable
// input as zero. It never fails.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ItemTotal derives a line item's total from its quantity/rate pair.
func ItemTotal(item domain.LineItem) float64 {
	return item.Quantity * ParseAmount(item.Rate)
}

// Subtotal sums the derived totals of all items.
func Subtotal(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += ItemTotal(item)
	}
	return sum
}
