package invoice

import (
	"fmt"
	"strconv"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

// TaxPolicy holds the region-based default applied when no tax type is
// explicitly selected.
type TaxPolicy struct {
	HomeState    string
	FallbackRate float64
}

// ResolveTax determines the applicable tax rate and display label.
// Precedence: an explicit tax-type selection (matched by ID or description)
// wins; without a selection the client's state picks the intra-state or
// inter-state flavor of the fallback rate; with no state at all the rate
// degrades to zero. A selection that matches no known tax type also degrades
// to zero rather than falling back to the state default. There is no error
// path.
func ResolveTax(taxType, state string, taxTypes []domain.TaxType, policy TaxPolicy) (rate float64, label string) {
	if taxType != "" {
		if t, ok := findTaxType(taxType, taxTypes); ok {
			return t.TaxPercentage, fmt.Sprintf("%s (%g%%)", t.TaxDescription, t.TaxPercentage)
		}
		return 0, "Tax"
	}
	switch {
	case state == policy.HomeState && state != "":
		return policy.FallbackRate, fmt.Sprintf("CGST+SGST (%g%%)", policy.FallbackRate)
	case state != "":
		return policy.FallbackRate, fmt.Sprintf("IGST (%g%%)", policy.FallbackRate)
	default:
		return 0, "Tax"
	}
}

func findTaxType(ref string, taxTypes []domain.TaxType) (domain.TaxType, bool) {
	for _, t := range taxTypes {
		if strconv.Itoa(t.ID) == ref {
			return t, true
		}
	}
	for _, t := range taxTypes {
		if t.TaxDescription == ref {
			return t, true
		}
	}
	return domain.TaxType{}, false
}
