package invoice

import (
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

// Recompute derives every computed field of the draft from its raw inputs
// and returns the new draft value; the input is never mutated. Re-running it
// on an unchanged draft yields identical derived values.
func Recompute(d domain.InvoiceDraft, taxTypes []domain.TaxType, policy TaxPolicy) domain.InvoiceDraft {
	out := d
	out.Items = make([]domain.LineItem, len(d.Items))
	for i, item := range d.Items {
		if item.Serial == 0 {
			item.Serial = i + 1
		}
		item.Total = ItemTotal(item)
		out.Items[i] = item
	}

	out.Subtotal = Subtotal(out.Items)
	rate, label := ResolveTax(d.TaxType, d.State, taxTypes, policy)
	out.TaxAmount = 0
	if rate > 0 {
		out.TaxAmount = out.Subtotal * rate / 100
	}
	out.GrandTotal = out.Subtotal + out.TaxAmount
	out.TaxLabel = label
	return out
}
