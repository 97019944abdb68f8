package invoice

import (
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/words"
)

// BuildSubmission assembles the create-invoice payload from a recomputed
// draft. The description block duplicates the first line item the way the
// legacy transaction table expects, and per-unit rates are always strings.
func BuildSubmission(d domain.InvoiceDraft) domain.SubmissionPayload {
	totalInWords, err := words.ConvertAmount(d.GrandTotal)
	if err != nil {
		totalInWords = words.Convert(0)
	}

	var first domain.LineItem
	if len(d.Items) > 0 {
		first = d.Items[0]
	}
	firstQuantity := first.Quantity
	if firstQuantity == 0 {
		firstQuantity = 1
	}

	items := make([]domain.SubmissionItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = domain.SubmissionItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			PerUnit:     item.Rate,
			Total:       ItemTotal(item),
		}
	}

	return domain.SubmissionPayload{
		Invoice: domain.SubmissionInvoice{
			InvoiceNumber:   d.InvoiceNumber,
			Date:            d.Date,
			ClientName:      d.ClientName,
			ClientAddress:   d.Address,
			State:           d.State,
			District:        d.District,
			PinCode:         d.PinCode,
			ClientGSTNumber: d.GSTNumber,
			ClientPANNumber: d.PANNumber,
			TaxID:           d.TaxType,
			GrandTotal:      d.GrandTotal,
			TotalInWords:    totalInWords,
		},
		Description: domain.SubmissionDescription{
			InvoiceNumber:      d.InvoiceNumber,
			InvoiceDescription: first.Description,
			BreakupAmount:      d.GrandTotal,
			Quantity:           firstQuantity,
			PerUnit:            first.Rate,
		},
		Items: items,
	}
}
