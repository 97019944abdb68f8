package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Reference(ctx context.Context) service.FormReference {
	args := m.Called(ctx)
	return args.Get(0).(service.FormReference)
}

func (m *MockInvoiceService) Preview(ctx context.Context, d domain.InvoiceDraft) service.PreviewResult {
	args := m.Called(ctx, d)
	return args.Get(0).(service.PreviewResult)
}

func (m *MockInvoiceService) Validate(d domain.InvoiceDraft) domain.ValidationResult {
	args := m.Called(d)
	return args.Get(0).(domain.ValidationResult)
}

func (m *MockInvoiceService) RenderPDF(ctx context.Context, d domain.InvoiceDraft) (*service.RenderedDocument, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedDocument), args.Error(1)
}

func (m *MockInvoiceService) RenderXLSX(ctx context.Context, d domain.InvoiceDraft) (*service.RenderedDocument, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedDocument), args.Error(1)
}

func (m *MockInvoiceService) Submit(ctx context.Context, d domain.InvoiceDraft, notify service.Notification) (*service.SubmissionReceipt, error) {
	args := m.Called(ctx, d, notify)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionReceipt), args.Error(1)
}
