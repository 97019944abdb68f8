package port

import (
	"context"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

// ReferenceClient abstracts the legacy reference backend. Implementations
// degrade gracefully: lookup methods return safe defaults instead of errors
// so the form is never blocked by missing reference data. Only CreateInvoice
// surfaces failures.
type ReferenceClient interface {
	// FinancialYears returns all financial years, or a single synthetic
	// current-year record if the backend is unreachable.
	FinancialYears(ctx context.Context) []domain.FinancialYear

	// MaxInvoiceNumber returns the highest invoice number issued for the
	// given short year ("2526"), or a zero-sequence placeholder on failure.
	MaxInvoiceNumber(ctx context.Context, shortYear string) string

	// HSNCodes returns all HSN/SAC codes; empty on failure.
	HSNCodes(ctx context.Context) []domain.HSNCode

	// TaxTypes returns all selectable tax types; empty on failure.
	TaxTypes(ctx context.Context) []domain.TaxType

	// CreateInvoice submits the invoice to the legacy backend. A non-2xx
	// response or transport failure is returned as an error wrapping
	// domain.ErrUpstreamRejected with the backend message.
	CreateInvoice(ctx context.Context, payload domain.SubmissionPayload) error
}
