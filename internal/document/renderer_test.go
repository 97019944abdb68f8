package document_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/config"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/document"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

func testIssuer() config.IssuerConfig {
	return config.IssuerConfig{
		Name: "M/S. L-IT TRULY SERVICES PRIVATE LIMITED",
		AddressLines: []string{
			"No 33, 2nd Floor, Chikathoguru Main Road,",
			"Hosur Road, Electronic City, Bangalore,",
			"Karnataka, India, 560100",
		},
		GSTIN:      "29AAECL9590K1ZP",
		PAN:        "AAECL9590K",
		Signatory:  "For L-IT Truly Services Pvt Ltd",
		BankName:   "L-IT TRULY SERVICES PVT LTD",
		BankBranch: "IDFC, Electronic City, Bangalore",
		IFSC:       "IDFB0080189",
		AccountNo:  "10088308677",
	}
}

func testDraft() domain.InvoiceDraft {
	return domain.InvoiceDraft{
		Date:          "2026-04-15",
		ClientName:    "Acme Corp",
		GSTNumber:     "29ABCDE1234F1Z5",
		Address:       "12 Residency Road, Bangalore",
		State:         "Karnataka",
		District:      "Bangalore Urban",
		PinCode:       "560025",
		HSN:           "9983",
		InvoiceNumber: "LIT/2526/008",
		FinYear:       "2025-2026",
		Items: []domain.LineItem{
			{Serial: 1, Description: "Consulting services", Quantity: 2, Rate: "100", Total: 200},
			{Serial: 2, Description: "Support retainer", Quantity: 1, Rate: "50", Total: 50},
		},
		Subtotal:   250,
		TaxAmount:  45,
		GrandTotal: 295,
		TaxLabel:   "CGST+SGST (18%)",
	}
}

func TestPDF(t *testing.T) {
	r := document.NewRenderer(testIssuer())

	data, name, err := r.PDF(testDraft())
	require.NoError(t, err)
	assert.Equal(t, "LIT-2526-008.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 1000)
}

func TestPDF_EmptyInvoiceNumber(t *testing.T) {
	r := document.NewRenderer(testIssuer())

	d := testDraft()
	d.InvoiceNumber = ""
	_, name, err := r.PDF(d)
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", name)
}

func TestPDF_NoItems(t *testing.T) {
	r := document.NewRenderer(testIssuer())

	d := testDraft()
	d.Items = nil
	d.Subtotal = 0
	d.TaxAmount = 0
	d.GrandTotal = 0

	data, _, err := r.PDF(d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestXLSX(t *testing.T) {
	r := document.NewRenderer(testIssuer())

	data, name, err := r.XLSX(testDraft())
	require.NoError(t, err)
	assert.Equal(t, "LIT-2526-008.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	title, err := f.GetCellValue("Invoice", "A1")
	require.NoError(t, err)
	assert.Equal(t, "INVOICE", title)

	number, err := f.GetCellValue("Invoice", "G3")
	require.NoError(t, err)
	assert.Equal(t, "LIT/2526/008", number)

	rows, err := f.GetRows("Invoice")
	require.NoError(t, err)

	var fields []string
	for _, row := range rows {
		fields = append(fields, row...)
	}
	flat := make(map[string]bool, len(fields))
	for _, v := range fields {
		flat[v] = true
	}
	assert.True(t, flat["Consulting services"], "line item description should be present")
	assert.True(t, flat["Signature With Seal"])
	assert.True(t, flat["Amount in Words:  Two Hundred and Ninety Five Only"])
}
