package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/service"
)

// ReferenceHandler handles reference data endpoints. Lookups never fail;
// backend trouble degrades to safe defaults inside the reference client.
type ReferenceHandler struct {
	ref            port.ReferenceClient
	invoiceService service.InvoiceService
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(ref port.ReferenceClient, invoiceService service.InvoiceService) *ReferenceHandler {
	return &ReferenceHandler{ref: ref, invoiceService: invoiceService}
}

// All handles GET /api/v1/reference
// @Summary Get all form reference data
// @Description Get financial years, HSN codes and tax types in one call, for the invoice form at load.
// @Tags reference
// @Produce json
// @Success 200 {object} Response{data=service.FormReference} "Reference data bundle"
// @Router /reference [get]
func (h *ReferenceHandler) All(c *gin.Context) {
	RespondOK(c, h.invoiceService.Reference(c.Request.Context()))
}

// FinancialYears handles GET /api/v1/reference/financial-years
// @Summary List financial years
// @Description List the selectable financial years. Returns a synthetic current-year record if the legacy backend is unreachable.
// @Tags reference
// @Produce json
// @Success 200 {object} Response{data=[]domain.FinancialYear} "Financial years"
// @Router /reference/financial-years [get]
func (h *ReferenceHandler) FinancialYears(c *gin.Context) {
	RespondOK(c, h.ref.FinancialYears(c.Request.Context()))
}

// HSNCodes handles GET /api/v1/reference/hsn-codes
// @Summary List HSN/SAC codes
// @Description List the selectable HSN/SAC classification codes; empty when the legacy backend is unreachable.
// @Tags reference
// @Produce json
// @Success 200 {object} Response{data=[]domain.HSNCode} "HSN codes"
// @Router /reference/hsn-codes [get]
func (h *ReferenceHandler) HSNCodes(c *gin.Context) {
	RespondOK(c, h.ref.HSNCodes(c.Request.Context()))
}

// TaxTypes handles GET /api/v1/reference/tax-types
// @Summary List tax types
// @Description List the selectable tax regimes; empty when the legacy backend is unreachable.
// @Tags reference
// @Produce json
// @Success 200 {object} Response{data=[]domain.TaxType} "Tax types"
// @Router /reference/tax-types [get]
func (h *ReferenceHandler) TaxTypes(c *gin.Context) {
	RespondOK(c, h.ref.TaxTypes(c.Request.Context()))
}
