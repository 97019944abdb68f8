package invoice_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
)

func TestBuildSubmission(t *testing.T) {
	d := domain.InvoiceDraft{
		InvoiceNumber: "LIT/2526/008",
		Date:          "2026-04-15",
		ClientName:    "John Doe",
		Address:       "12 MG Road",
		State:         "Karnataka",
		District:      "Bangalore Urban",
		PinCode:       "560100",
		GSTNumber:     "29ABCDE1234F1Z5",
		TaxType:       "1",
		Items: []domain.LineItem{
			{Serial: 1, Description: "Consulting", Quantity: 2, Rate: "100"},
			{Serial: 2, Description: "Support", Quantity: 1, Rate: "50"},
		},
	}
	d = invoice.Recompute(d, testTaxTypes, testPolicy)
	p := invoice.BuildSubmission(d)

	assert.Equal(t, "LIT/2526/008", p.Invoice.InvoiceNumber)
	assert.Equal(t, 295.0, p.Invoice.GrandTotal)
	assert.Equal(t, "Two Hundred and Ninety Five", p.Invoice.TotalInWords)
	assert.Equal(t, "1", p.Invoice.TaxID)

	// description block duplicates the first item
	assert.Equal(t, "Consulting", p.Description.InvoiceDescription)
	assert.Equal(t, 295.0, p.Description.BreakupAmount)
	assert.Equal(t, 2.0, p.Description.Quantity)
	assert.Equal(t, "100", p.Description.PerUnit)

	require.Len(t, p.Items, 2)
	assert.Equal(t, 200.0, p.Items[0].Total)
	assert.Equal(t, "50", p.Items[1].PerUnit)
}

func TestBuildSubmission_PerUnitIsAlwaysString(t *testing.T) {
	d := domain.InvoiceDraft{Items: []domain.LineItem{{Description: "x", Quantity: 1, Rate: "99.50"}}}
	p := invoice.BuildSubmission(invoice.Recompute(d, nil, testPolicy))

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	items := decoded["items"].([]any)
	first := items[0].(map[string]any)
	_, isString := first["perUnit"].(string)
	assert.True(t, isString, "perUnit must be transmitted as a string")
}

func TestBuildSubmission_EmptyItems(t *testing.T) {
	p := invoice.BuildSubmission(domain.InvoiceDraft{})
	assert.Empty(t, p.Items)
	assert.Equal(t, 1.0, p.Description.Quantity) // defaulted
	assert.Equal(t, "Zero", p.Invoice.TotalInWords)
}

func TestBuildSubmission_PaiseInWords(t *testing.T) {
	d := domain.InvoiceDraft{Items: []domain.LineItem{{Description: "x", Quantity: 1, Rate: "100.50"}}}
	p := invoice.BuildSubmission(invoice.Recompute(d, nil, testPolicy))
	assert.Equal(t, "One Hundred and Fifty Paise", p.Invoice.TotalInWords)
}
