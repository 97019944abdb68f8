package document

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/config"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/words"
)

// Renderer produces PDF and XLSX documents for a recomputed invoice draft.
// The issuer identity block is injected once at construction.
type Renderer struct {
	issuer config.IssuerConfig
}

func NewRenderer(issuer config.IssuerConfig) *Renderer {
	return &Renderer{issuer: issuer}
}

// item grid column widths in mm; the description column absorbs the rest of
// the printable width.
const (
	itemColSerial  = 15.0
	itemColQty     = 20.0
	itemColPerUnit = 25.0
	itemColTotal   = 30.0
)

// PDF renders the draft as an A4 portrait invoice and returns the document
// bytes with its download filename.
func (r *Renderer) PDF(d domain.InvoiceDraft) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// outer frame
	pdf.SetDrawColor(34, 34, 34)
	pdf.SetLineWidth(0.4)
	pdf.Rect(7, 7, pageW-14, pageH-14, "D")

	pdf.SetFont("Times", "B", 18)
	pdf.Text((pageW-pdf.GetStringWidth("INVOICE"))/2, 18, "INVOICE")

	// issuer block, top left
	pdf.SetFont("Times", "", 12)
	y := 28.0
	pdf.Text(14, y, r.issuer.Name)
	for _, line := range r.issuer.AddressLines {
		y += 6
		pdf.Text(14, y, line)
	}
	y += 6
	pdf.Text(14, y, "GSTIN:"+r.issuer.GSTIN)
	y += 6
	pdf.Text(14, y, "PAN NO: "+r.issuer.PAN)

	r.metadataTable(pdf, pageW, d)

	// client block
	clientY := y + 10
	pdf.SetFont("Times", "", 13)
	pdf.Text(14, clientY, "To,")
	pdf.Text(14, clientY+6, d.ClientName)
	nextLine := clientY + 12
	addressLines := pdf.SplitText(d.Address, 70)
	for _, line := range addressLines {
		pdf.Text(14, nextLine, line)
		nextLine += 6
	}
	pdf.SetFont("Times", "", 12)
	if extra := regionLine(d); extra != "" {
		pdf.Text(14, nextLine, extra)
		nextLine += 6
	}
	if d.GSTNumber != "" {
		pdf.SetFont("Times", "B", 12)
		pdf.Text(14, nextLine, "GSTIN:")
		pdf.SetFont("Times", "", 12)
		pdf.Text(32, nextLine, d.GSTNumber)
		nextLine += 6
	}
	if d.PANNumber != "" {
		pdf.SetFont("Times", "B", 12)
		pdf.Text(14, nextLine, "PAN:")
		pdf.SetFont("Times", "", 12)
		pdf.Text(32, nextLine, d.PANNumber)
		nextLine += 6
	}
	pdf.SetFont("Times", "", 14)
	pdf.Text(pageW-81, clientY+6, "Email Confirmation: Yes")

	tableBottom := r.itemTable(pdf, pageW, nextLine+10, d)

	// totals, right aligned under the grid
	pdf.SetFont("Times", "B", 13)
	tableRight := pageW - 14
	lineY := tableBottom + 8
	pdf.Text(tableRight-68, lineY, fmt.Sprintf("Subtotal: Rs.%s", FormatINR(d.Subtotal)))
	lineY += 8
	pdf.Text(tableRight-68, lineY, fmt.Sprintf("%s: Rs.%s", d.TaxLabel, FormatINR(d.TaxAmount)))
	lineY += 8
	pdf.Text(tableRight-68, lineY, fmt.Sprintf("Total: Rs.%s", FormatINR(d.GrandTotal)))
	lineY += 32

	pdf.SetFont("Times", "", 12)
	pdf.Text(14, lineY, fmt.Sprintf("Amount in Words:  %s Only", words.Convert(int64(math.Round(d.GrandTotal)))))

	hsnBottom := r.hsnTable(pdf, pageW, lineY+9, d)

	// bank details and signature
	bankY := hsnBottom + 14
	pdf.SetFont("Times", "B", 13)
	pdf.Text(14, bankY+10, r.issuer.Signatory)
	pdf.SetFont("Times", "", 11)
	blockY := bankY
	pdf.Text(pageW-95, blockY, "Company Name: "+r.issuer.BankName)
	blockY += 7
	pdf.Text(pageW-95, blockY, "Bank and Branch: "+r.issuer.BankBranch)
	blockY += 7
	pdf.Text(pageW-95, blockY, "IFSC Code: "+r.issuer.IFSC)
	blockY += 7
	pdf.Text(pageW-95, blockY, "Account No: "+r.issuer.AccountNo)

	pdf.SetFont("Times", "B", 13)
	pdf.Text(14, bankY+28, "Signature With Seal")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return buf.Bytes(), artifactName(d.InvoiceNumber, "pdf"), nil
}

// metadataTable draws the bordered invoice number / date / HSN box at the
// top right.
func (r *Renderer) metadataTable(pdf *gofpdf.Fpdf, pageW float64, d domain.InvoiceDraft) {
	const (
		left   = 81.0 // offset from the right edge
		width  = 70.0
		rowH   = 7.0
		startY = 25.0
	)
	x := pageW - left

	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(x, startY, width, rowH*3, "D")

	rows := [][2]string{
		{"INVOICE No:", d.InvoiceNumber},
		{"DATE:", d.Date},
		{"HSN Code:", d.HSN},
	}
	pdf.SetFontSize(11)
	for i, row := range rows {
		baseline := startY + rowH*float64(i) + 5
		pdf.SetFont("Times", "B", 11)
		pdf.Text(x+2, baseline, row[0])
		pdf.SetFont("Times", "", 11)
		pdf.Text(x+30, baseline, row[1])
	}
}

// itemTable draws the line item grid starting at startY and returns the Y of
// its bottom edge.
func (r *Renderer) itemTable(pdf *gofpdf.Fpdf, pageW, startY float64, d domain.InvoiceDraft) float64 {
	tableW := pageW - 28
	descW := tableW - itemColSerial - itemColQty - itemColPerUnit - itemColTotal
	widths := []float64{itemColSerial, descW, itemColQty, itemColPerUnit, itemColTotal}
	headers := []string{"Sl No", "Description", "Quantity", "Per Unit", "Total Amount"}

	pdf.SetFont("Times", "B", 11)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(14, startY)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Times", "", 11)

	y := startY + 8
	for i, item := range d.Items {
		descLines := pdf.SplitText(item.Description, descW-4)
		if len(descLines) == 0 {
			descLines = []string{""}
		}
		rowH := 7 * float64(len(descLines))

		perUnit := ""
		if strings.TrimSpace(item.Rate) != "" {
			perUnit = FormatINR(invoice.ParseAmount(item.Rate))
		}
		cells := []string{
			strconv.Itoa(i + 1),
			"", // description drawn line by line below
			formatQuantity(item.Quantity),
			perUnit,
			FormatINR(item.Total),
		}
		aligns := []string{"L", "L", "R", "R", "R"}

		x := 14.0
		for c := range cells {
			pdf.Rect(x, y, widths[c], rowH, "D")
			if cells[c] != "" {
				textX := x + 2
				if aligns[c] == "R" {
					textX = x + widths[c] - 2 - pdf.GetStringWidth(cells[c])
				}
				pdf.Text(textX, y+5, cells[c])
			}
			x += widths[c]
		}
		for l, line := range descLines {
			pdf.Text(14+itemColSerial+2, y+5+7*float64(l), line)
		}
		y += rowH
	}
	return y
}

// hsnTable draws the single-row HSN tax summary and returns its bottom Y.
func (r *Renderer) hsnTable(pdf *gofpdf.Fpdf, pageW, startY float64, d domain.InvoiceDraft) float64 {
	widths := []float64{30, 46, 40, 22, 47}
	headers := []string{"HSN/SAC", "Net Taxable Value", "Tax", "Tax %", "Tax Amount"}

	pdf.SetFont("Times", "B", 12)
	pdf.SetFillColor(255, 102, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(14, startY)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Times", "", 12)

	cells := []string{
		d.HSN,
		FormatINR(d.Subtotal),
		d.TaxLabel,
		formatQuantity(effectiveTaxRate(d)),
		FormatINR(d.TaxAmount),
	}
	pdf.SetXY(14, startY+8)
	for i, c := range cells {
		pdf.CellFormat(widths[i], 8, c, "1", 0, "L", false, 0, "")
	}
	return startY + 16
}

// effectiveTaxRate recovers the applied percentage from the recomputed
// totals.
func effectiveTaxRate(d domain.InvoiceDraft) float64 {
	if d.Subtotal <= 0 || d.TaxAmount == 0 {
		return 0
	}
	return math.Round(d.TaxAmount/d.Subtotal*10000) / 100
}

// regionLine joins state, district and pin code into the single client
// address suffix line.
func regionLine(d domain.InvoiceDraft) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.State, d.District, d.PinCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// artifactName builds the download filename. Invoice number separators are
// flattened so the name stays a single path segment in object storage.
func artifactName(invoiceNumber, ext string) string {
	if invoiceNumber == "" {
		return "invoice." + ext
	}
	return strings.ReplaceAll(invoiceNumber, "/", "-") + "." + ext
}
