package noop

import (
	"context"
	"log"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceIssued(_ context.Context, toEmail, toName, invoiceNumber, artifactURL string) error {
	log.Printf("[NOOP EMAIL] Invoice %s issued for %s (%s): %s", invoiceNumber, toName, toEmail, artifactURL)
	return nil
}
