package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/handler"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/service"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/mocks"
)

func getRequest(h gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, path, nil)
	h(c)
	return w
}

func TestReferenceHandler_FinancialYears(t *testing.T) {
	ref := new(mocks.MockReferenceClient)
	ref.On("FinancialYears", mock.Anything).Return([]domain.FinancialYear{
		{ID: 1, FinYear: "2025-2026", IsActive: true},
	})
	h := handler.NewReferenceHandler(ref, new(mocks.MockInvoiceService))

	w := getRequest(h.FinancialYears, "/api/v1/reference/financial-years")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []domain.FinancialYear `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2025-2026", resp.Data[0].FinYear)
}

func TestReferenceHandler_HSNCodes_EmptyIsOK(t *testing.T) {
	ref := new(mocks.MockReferenceClient)
	ref.On("HSNCodes", mock.Anything).Return([]domain.HSNCode{})
	h := handler.NewReferenceHandler(ref, new(mocks.MockInvoiceService))

	w := getRequest(h.HSNCodes, "/api/v1/reference/hsn-codes")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReferenceHandler_TaxTypes(t *testing.T) {
	ref := new(mocks.MockReferenceClient)
	ref.On("TaxTypes", mock.Anything).Return([]domain.TaxType{
		{ID: 1, TaxDescription: "GST", TaxPercentage: 18},
	})
	h := handler.NewReferenceHandler(ref, new(mocks.MockInvoiceService))

	w := getRequest(h.TaxTypes, "/api/v1/reference/tax-types")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []domain.TaxType `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 18.0, resp.Data[0].TaxPercentage)
}

func TestReferenceHandler_All(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	mockSvc.On("Reference", mock.Anything).Return(service.FormReference{
		FinancialYears: []domain.FinancialYear{{ID: 1, FinYear: "2025-2026"}},
		HSNCodes:       []domain.HSNCode{{ID: 1, Code: "9983"}},
		TaxTypes:       []domain.TaxType{{ID: 1, TaxDescription: "GST", TaxPercentage: 18}},
	})
	h := handler.NewReferenceHandler(new(mocks.MockReferenceClient), mockSvc)

	w := getRequest(h.All, "/api/v1/reference")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data service.FormReference `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.FinancialYears, 1)
	assert.Len(t, resp.Data.HSNCodes, 1)
	assert.Len(t, resp.Data.TaxTypes, 1)
	mockSvc.AssertExpectations(t)
}
