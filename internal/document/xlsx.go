package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/words"
)

const xlsxSheet = "Invoice"

// XLSX renders the draft as a spreadsheet with the same blocks as the PDF:
// issuer header, metadata, client, item grid, totals, HSN summary and bank
// details.
func (r *Renderer) XLSX(d domain.InvoiceDraft) ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	_ = f.SetColWidth(xlsxSheet, "A", "A", 8)
	_ = f.SetColWidth(xlsxSheet, "B", "B", 48)
	_ = f.SetColWidth(xlsxSheet, "C", "E", 16)
	_ = f.SetColWidth(xlsxSheet, "F", "G", 22)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 18},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	itemHeadStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000000"}},
	})
	hsnHeadStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FF6600"}},
	})

	_ = f.MergeCell(xlsxSheet, "A1", "G1")
	_ = f.SetCellValue(xlsxSheet, "A1", "INVOICE")
	_ = f.SetCellStyle(xlsxSheet, "A1", "G1", titleStyle)

	row := 3
	setCell := func(col string, r int, v any) {
		_ = f.SetCellValue(xlsxSheet, fmt.Sprintf("%s%d", col, r), v)
	}

	// issuer block on the left, metadata box on the right
	setCell("A", row, r.issuer.Name)
	setCell("F", row, "INVOICE No:")
	setCell("G", row, d.InvoiceNumber)
	setCell("F", row+1, "DATE:")
	setCell("G", row+1, d.Date)
	setCell("F", row+2, "HSN Code:")
	setCell("G", row+2, d.HSN)
	_ = f.SetCellStyle(xlsxSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row+2), boldStyle)

	for _, line := range r.issuer.AddressLines {
		row++
		setCell("A", row, line)
	}
	row++
	setCell("A", row, "GSTIN:"+r.issuer.GSTIN)
	row++
	setCell("A", row, "PAN NO: "+r.issuer.PAN)

	row += 2
	setCell("A", row, "To,")
	row++
	setCell("A", row, d.ClientName)
	row++
	setCell("A", row, d.Address)
	if extra := regionLine(d); extra != "" {
		row++
		setCell("A", row, extra)
	}
	if d.GSTNumber != "" {
		row++
		setCell("A", row, "GSTIN: "+d.GSTNumber)
	}
	if d.PANNumber != "" {
		row++
		setCell("A", row, "PAN: "+d.PANNumber)
	}

	// item grid
	row += 2
	headers := []string{"Sl No", "Description", "Quantity", "Per Unit", "Total Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(xlsxSheet, cell, h)
	}
	_ = f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), itemHeadStyle)

	for i, item := range d.Items {
		row++
		setCell("A", row, i+1)
		setCell("B", row, item.Description)
		setCell("C", row, item.Quantity)
		if strings.TrimSpace(item.Rate) != "" {
			setCell("D", row, invoice.ParseAmount(item.Rate))
		}
		setCell("E", row, item.Total)
	}

	row += 2
	setCell("D", row, "Subtotal:")
	setCell("E", row, d.Subtotal)
	row++
	setCell("D", row, d.TaxLabel+":")
	setCell("E", row, d.TaxAmount)
	row++
	setCell("D", row, "Total:")
	setCell("E", row, d.GrandTotal)
	_ = f.SetCellStyle(xlsxSheet, fmt.Sprintf("D%d", row-2), fmt.Sprintf("D%d", row), boldStyle)

	row += 2
	setCell("A", row, fmt.Sprintf("Amount in Words:  %s Only", words.Convert(int64(math.Round(d.GrandTotal)))))

	// HSN tax summary
	row += 2
	hsnHeaders := []string{"HSN/SAC", "Net Taxable Value", "Tax", "Tax %", "Tax Amount"}
	for i, h := range hsnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(xlsxSheet, cell, h)
	}
	_ = f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), hsnHeadStyle)
	row++
	setCell("A", row, d.HSN)
	setCell("B", row, d.Subtotal)
	setCell("C", row, d.TaxLabel)
	setCell("D", row, effectiveTaxRate(d))
	setCell("E", row, d.TaxAmount)

	// bank details and signature
	row += 2
	setCell("A", row, r.issuer.Signatory)
	_ = f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)
	setCell("F", row, "Company Name: "+r.issuer.BankName)
	row++
	setCell("F", row, "Bank and Branch: "+r.issuer.BankBranch)
	row++
	setCell("F", row, "IFSC Code: "+r.issuer.IFSC)
	row++
	setCell("F", row, "Account No: "+r.issuer.AccountNo)
	row += 2
	setCell("A", row, "Signature With Seal")
	_ = f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return buf.Bytes(), artifactName(d.InvoiceNumber, "xlsx"), nil
}
