package domain

// InvoiceDraft is the full state of one invoice form session. Scalars mirror
// the form fields; derived fields (Subtotal, TaxAmount, GrandTotal, TaxLabel)
// are recomputed by the invoice reducer and never mutated independently.
type InvoiceDraft struct {
	Date          string `json:"date"`
	ClientName    string `json:"clientName"`
	GSTNumber     string `json:"gstNumber,omitempty"`
	PANNumber     string `json:"panNumber,omitempty"`
	Address       string `json:"address"`
	State         string `json:"state"`
	District      string `json:"district,omitempty"`
	PinCode       string `json:"pinCode"`
	HSN           string `json:"hsn"`
	InvoiceNumber string `json:"invoiceNumber"`
	TaxType       string `json:"taxType,omitempty"`
	FinYear       string `json:"finYear"`

	// Items keep insertion order; serials and document rows derive from it.
	Items []LineItem `json:"items"`

	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"taxAmount"`
	GrandTotal float64 `json:"grandTotal"`
	TaxLabel   string  `json:"taxLabel"`
}

// LineItem is a single invoice row. Rate stays a string so partially typed
// decimal input round-trips through the form unchanged; Total is derived.
type LineItem struct {
	Serial      int     `json:"serial"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        string  `json:"rate"`
	Total       float64 `json:"total"`
}

// NewLineItem returns a fresh row with the default field values the form
// seeds for a newly added item.
func NewLineItem(serial int) LineItem {
	return LineItem{Serial: serial, Quantity: 1, Rate: "", Total: 0}
}

// FinancialYear is a reference-data record from the legacy backend.
type FinancialYear struct {
	ID        int    `json:"id"`
	FinYear   string `json:"finYear"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  bool   `json:"isActive"`
}

// TaxType is a reference-data record describing one selectable tax regime.
type TaxType struct {
	ID             int     `json:"id"`
	TaxDescription string  `json:"taxDescription"`
	TaxPercentage  float64 `json:"taxPercentage"`
}

// HSNCode is a reference-data record for one HSN/SAC classification.
type HSNCode struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// ValidationResult carries the field-keyed error map for the draft and a
// parallel per-item error slice. Both empty means the draft is exportable.
type ValidationResult struct {
	FieldErrors map[string]string   `json:"fieldErrors"`
	ItemErrors  []map[string]string `json:"itemErrors"`
}

// Valid reports whether every error map is empty.
func (r ValidationResult) Valid() bool {
	if len(r.FieldErrors) > 0 {
		return false
	}
	for _, e := range r.ItemErrors {
		if len(e) > 0 {
			return false
		}
	}
	return true
}

// SubmissionPayload is the create-invoice request body accepted from the UI
// shell and forwarded to the legacy backend.
type SubmissionPayload struct {
	Invoice     SubmissionInvoice     `json:"invoice"`
	Description SubmissionDescription `json:"description"`
	Items       []SubmissionItem      `json:"items"`
}

// SubmissionInvoice is the invoice block of the submission payload.
type SubmissionInvoice struct {
	InvoiceNumber   string  `json:"invoiceNumber"`
	Date            string  `json:"date"`
	ClientName      string  `json:"clientName"`
	ClientAddress   string  `json:"clientAddress"`
	State           string  `json:"state"`
	District        string  `json:"district"`
	PinCode         string  `json:"pinCode"`
	ClientGSTNumber string  `json:"clientGSTNumber"`
	ClientPANNumber string  `json:"clientPANNumber"`
	TaxID           string  `json:"taxID"`
	GrandTotal      float64 `json:"grandTotal"`
	TotalInWords    string  `json:"totalInWords"`
}

// SubmissionDescription duplicates the first line item the way the legacy
// transaction table expects it.
type SubmissionDescription struct {
	InvoiceNumber      string  `json:"invoiceNumber"`
	InvoiceDescription string  `json:"invoiceDescription"`
	BreakupAmount      float64 `json:"breakupAmount"`
	Quantity           float64 `json:"quantity"`
	PerUnit            string  `json:"perUnit"`
}

// SubmissionItem is one line item of the submission payload. PerUnit is
// always transmitted as a string for legacy backend compatibility.
type SubmissionItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	PerUnit     string  `json:"perUnit"`
	Total       float64 `json:"total"`
}
