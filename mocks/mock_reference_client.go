package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

// MockReferenceClient is a mock implementation of port.ReferenceClient.
type MockReferenceClient struct {
	mock.Mock
}

func (m *MockReferenceClient) FinancialYears(ctx context.Context) []domain.FinancialYear {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.FinancialYear)
}

func (m *MockReferenceClient) MaxInvoiceNumber(ctx context.Context, shortYear string) string {
	args := m.Called(ctx, shortYear)
	return args.String(0)
}

func (m *MockReferenceClient) HSNCodes(ctx context.Context) []domain.HSNCode {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.HSNCode)
}

func (m *MockReferenceClient) TaxTypes(ctx context.Context) []domain.TaxType {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.TaxType)
}

func (m *MockReferenceClient) CreateInvoice(ctx context.Context, payload domain.SubmissionPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
