package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/service"
)

// InvoiceHandler handles draft preview, validation, document export and
// submission endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	numbering      *service.NumberingResolver
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, numbering *service.NumberingResolver) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, numbering: numbering}
}

// SubmitRequest is an invoice draft with an optional notification recipient.
type SubmitRequest struct {
	domain.InvoiceDraft
	Notify service.Notification `json:"notify"`
}

// NextNumberResponse carries a resolved invoice number. Stale marks a
// resolution that was superseded by a newer financial year selection; its
// number is empty and must be discarded.
type NextNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Stale         bool   `json:"stale"`
}

// NextNumber handles GET /api/v1/invoices/next-number
// @Summary Resolve the next invoice number
// @Description Resolve the next sequential invoice number for the given financial year. Concurrent requests race; only the latest one returns a number, superseded ones return stale.
// @Tags invoices
// @Produce json
// @Param finYear query string true "Financial year, e.g. 2025-2026"
// @Success 200 {object} Response{data=NextNumberResponse} "Next invoice number"
// @Router /invoices/next-number [get]
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	finYear := c.Query("finYear")
	number, stale := h.numbering.Resolve(c.Request.Context(), finYear)
	RespondOK(c, NextNumberResponse{InvoiceNumber: number, Stale: stale})
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Preview an invoice draft
// @Description Recompute derived totals, tax label and amount-in-words for a draft, together with its validation state. Never fails on an invalid draft.
// @Tags invoices
// @Accept json
// @Produce json
// @Param draft body domain.InvoiceDraft true "Invoice draft"
// @Success 200 {object} Response{data=service.PreviewResult} "Recomputed draft"
// @Failure 400 {object} ErrorResponseBody "Malformed request body"
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	RespondOK(c, h.invoiceService.Preview(c.Request.Context(), draft))
}

// Validate handles POST /api/v1/invoices/validate
// @Summary Validate an invoice draft
// @Description Run the form validation rules and return the field and per-item error maps.
// @Tags invoices
// @Accept json
// @Produce json
// @Param draft body domain.InvoiceDraft true "Invoice draft"
// @Success 200 {object} Response{data=domain.ValidationResult} "Validation result"
// @Failure 400 {object} ErrorResponseBody "Malformed request body"
// @Router /invoices/validate [post]
func (h *InvoiceHandler) Validate(c *gin.Context) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	RespondOK(c, h.invoiceService.Validate(draft))
}

// ExportPDF handles POST /api/v1/invoices/pdf
// @Summary Export an invoice draft as PDF
// @Description Render the draft as the fixed-layout PDF document and return it for download. Rejected with the validation maps when the draft is invalid.
// @Tags invoices
// @Accept json
// @Produce application/pdf
// @Param draft body domain.InvoiceDraft true "Invoice draft"
// @Success 200 {file} binary "PDF document"
// @Failure 422 {object} ErrorResponseBody "Draft failed validation"
// @Router /invoices/pdf [post]
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
	h.export(c, h.invoiceService.RenderPDF)
}

// ExportXLSX handles POST /api/v1/invoices/xlsx
// @Summary Export an invoice draft as a spreadsheet
// @Description Render the draft as an XLSX workbook and return it for download. Rejected with the validation maps when the draft is invalid.
// @Tags invoices
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param draft body domain.InvoiceDraft true "Invoice draft"
// @Success 200 {file} binary "XLSX document"
// @Failure 422 {object} ErrorResponseBody "Draft failed validation"
// @Router /invoices/xlsx [post]
func (h *InvoiceHandler) ExportXLSX(c *gin.Context) {
	h.export(c, h.invoiceService.RenderXLSX)
}

func (h *InvoiceHandler) export(c *gin.Context, render func(ctx context.Context, d domain.InvoiceDraft) (*service.RenderedDocument, error)) {
	var draft domain.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	doc, err := render(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, domain.ErrDraftInvalid) {
			RespondValidationFailed(c, h.invoiceService.Validate(draft))
			return
		}
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// Submit handles POST /api/v1/invoices
// @Summary Submit an invoice
// @Description Validate, recompute and submit the invoice to the legacy backend, archive the rendered PDF and optionally email the recipient a download link.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Invoice draft with optional notification recipient"
// @Success 200 {object} Response{data=service.SubmissionReceipt} "Submission acknowledged"
// @Failure 422 {object} ErrorResponseBody "Draft failed validation"
// @Failure 502 {object} ErrorResponseBody "Legacy backend rejected the invoice"
// @Router /invoices [post]
func (h *InvoiceHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	receipt, err := h.invoiceService.Submit(c.Request.Context(), req.InvoiceDraft, req.Notify)
	if err != nil {
		if errors.Is(err, domain.ErrDraftInvalid) {
			RespondValidationFailed(c, h.invoiceService.Validate(req.InvoiceDraft))
			return
		}
		HandleError(c, err)
		return
	}
	RespondOK(c, receipt)
}
