// Package words renders integer amounts as English words under the Indian
// numbering grouping (Hundred, Thousand, Lakh, Crore).
package words

import (
	"math"
	"strings"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

var single = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var double = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// formatTens renders a value below 100.
func formatTens(n int64) string {
	switch {
	case n < 10:
		return single[n]
	case n < 20:
		return double[n-10]
	default:
		if unit := n % 10; unit != 0 {
			return tens[n/10] + " " + single[unit]
		}
		return tens[n/10]
	}
}

// Convert returns the word form of n. "and" joins the hundreds group and the
// trailing tens/ones when both are present ("Two Hundred and Ninety Five").
// Negative values get a "Minus" prefix; zero maps to "Zero".
func Convert(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Convert(-n)
	}

	var b strings.Builder
	if crore := n / 1e7; crore > 0 {
		b.WriteString(Convert(crore) + " Crore ")
		n %= 1e7
	}
	if lakh := n / 1e5; lakh > 0 {
		b.WriteString(Convert(lakh) + " Lakh ")
		n %= 1e5
	}
	if thousand := n / 1000; thousand > 0 {
		b.WriteString(Convert(thousand) + " Thousand ")
		n %= 1000
	}
	if hundred := n / 100; hundred > 0 {
		b.WriteString(single[hundred] + " Hundred ")
		n %= 100
	}
	if n > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		b.WriteString(formatTens(n))
	}
	return strings.TrimSpace(b.String())
}

// ConvertAmount is the decimal-aware variant: the rupee part is converted as
// Convert does, and a non-zero paise remainder appends an "and N Paise"
// clause. Non-finite input is the only failure mode.
func ConvertAmount(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", domain.ErrInvalidAmount
	}

	neg := amount < 0
	abs := math.Abs(amount)
	rupees := int64(math.Floor(abs))
	paise := int64(math.Round((abs - math.Floor(abs)) * 100))
	if paise == 100 {
		rupees++
		paise = 0
	}

	if neg {
		rupees = -rupees
	}
	out := Convert(rupees)
	if paise > 0 {
		out += " and " + formatTens(paise) + " Paise"
	}
	return out, nil
}
