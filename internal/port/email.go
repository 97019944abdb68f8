package port

import "context"

// EmailSender defines the contract for invoice notification emails.
type EmailSender interface {
	SendInvoiceIssued(ctx context.Context, toEmail, toName, invoiceNumber, artifactURL string) error
}
