package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceIssued(ctx context.Context, toEmail, toName, invoiceNumber, artifactURL string) error {
	args := m.Called(ctx, toEmail, toName, invoiceNumber, artifactURL)
	return args.Error(0)
}
