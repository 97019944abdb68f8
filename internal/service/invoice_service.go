package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/document"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/words"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PreviewResult is a recomputed draft with its derived presentation fields.
type PreviewResult struct {
	Draft         domain.InvoiceDraft     `json:"draft"`
	AmountInWords string                  `json:"amountInWords"`
	Validation    domain.ValidationResult `json:"validation"`
}

// RenderedDocument is a rendered invoice with its persistence locations.
type RenderedDocument struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Notification identifies the optional recipient of the issued-invoice email.
type Notification struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SubmissionReceipt acknowledges a successful upstream submission.
type SubmissionReceipt struct {
	InvoiceNumber    string `json:"invoiceNumber"`
	ArtifactLocation string `json:"artifactLocation,omitempty"`
	ArtifactURL      string `json:"artifactUrl,omitempty"`
	EmailSent        bool   `json:"emailSent"`
}

// FormReference bundles the reference data the invoice form needs at load.
type FormReference struct {
	FinancialYears []domain.FinancialYear `json:"financialYears"`
	HSNCodes       []domain.HSNCode       `json:"hsnCodes"`
	TaxTypes       []domain.TaxType       `json:"taxTypes"`
}

// InvoiceService orchestrates draft recomputation, validation, document
// rendering and upstream submission.
type InvoiceService interface {
	Reference(ctx context.Context) FormReference
	Preview(ctx context.Context, d domain.InvoiceDraft) PreviewResult
	Validate(d domain.InvoiceDraft) domain.ValidationResult
	RenderPDF(ctx context.Context, d domain.InvoiceDraft) (*RenderedDocument, error)
	RenderXLSX(ctx context.Context, d domain.InvoiceDraft) (*RenderedDocument, error)
	Submit(ctx context.Context, d domain.InvoiceDraft, notify Notification) (*SubmissionReceipt, error)
}

type invoiceService struct {
	ref           port.ReferenceClient
	store         port.ArtifactStore
	email         port.EmailSender
	renderer      *document.Renderer
	policy        invoice.TaxPolicy
	presignExpiry int64
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	ref port.ReferenceClient,
	store port.ArtifactStore,
	email port.EmailSender,
	renderer *document.Renderer,
	policy invoice.TaxPolicy,
	presignExpiry int64,
) InvoiceService {
	return &invoiceService{
		ref:           ref,
		store:         store,
		email:         email,
		renderer:      renderer,
		policy:        policy,
		presignExpiry: presignExpiry,
	}
}

// Reference fetches years, HSN codes and tax types. HSN and tax are an
// unordered pair, fetched concurrently.
func (s *invoiceService) Reference(ctx context.Context) FormReference {
	out := FormReference{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.HSNCodes = s.ref.HSNCodes(ctx)
	}()
	go func() {
		defer wg.Done()
		out.TaxTypes = s.ref.TaxTypes(ctx)
	}()
	out.FinancialYears = s.ref.FinancialYears(ctx)
	wg.Wait()

	return out
}

func (s *invoiceService) Preview(ctx context.Context, d domain.InvoiceDraft) PreviewResult {
	recomputed := invoice.Recompute(d, s.ref.TaxTypes(ctx), s.policy)
	return PreviewResult{
		Draft:         recomputed,
		AmountInWords: words.Convert(int64(math.Round(recomputed.GrandTotal))) + " Only",
		Validation:    invoice.Validate(recomputed),
	}
}

func (s *invoiceService) Validate(d domain.InvoiceDraft) domain.ValidationResult {
	return invoice.Validate(d)
}

func (s *invoiceService) RenderPDF(ctx context.Context, d domain.InvoiceDraft) (*RenderedDocument, error) {
	return s.render(ctx, d, pdfContentType, s.renderer.PDF)
}

func (s *invoiceService) RenderXLSX(ctx context.Context, d domain.InvoiceDraft) (*RenderedDocument, error) {
	return s.render(ctx, d, xlsxContentType, s.renderer.XLSX)
}

func (s *invoiceService) render(
	ctx context.Context,
	d domain.InvoiceDraft,
	contentType string,
	renderFn func(domain.InvoiceDraft) ([]byte, string, error),
) (*RenderedDocument, error) {
	if !invoice.Validate(d).Valid() {
		return nil, domain.ErrDraftInvalid
	}

	recomputed := invoice.Recompute(d, s.ref.TaxTypes(ctx), s.policy)

	data, name, err := renderFn(recomputed)
	if err != nil {
		return nil, err
	}

	doc := &RenderedDocument{Filename: name, ContentType: contentType, Data: data}

	location, err := s.store.Save(ctx, name, contentType, data)
	if err != nil {
		return nil, err
	}
	doc.Location = location

	if url, err := s.store.PresignedURL(ctx, name, s.presignExpiry); err == nil {
		doc.URL = url
	}
	return doc, nil
}

// Submit validates, recomputes and posts the draft upstream, then archives
// the rendered PDF and notifies the recipient. Archival and notification are
// best effort once the upstream accepted the invoice.
func (s *invoiceService) Submit(ctx context.Context, d domain.InvoiceDraft, notify Notification) (*SubmissionReceipt, error) {
	if !invoice.Validate(d).Valid() {
		return nil, domain.ErrDraftInvalid
	}

	recomputed := invoice.Recompute(d, s.ref.TaxTypes(ctx), s.policy)

	if err := s.ref.CreateInvoice(ctx, invoice.BuildSubmission(recomputed)); err != nil {
		return nil, fmt.Errorf("submitting invoice %s: %w", recomputed.InvoiceNumber, err)
	}

	receipt := &SubmissionReceipt{InvoiceNumber: recomputed.InvoiceNumber}

	data, name, err := s.renderer.PDF(recomputed)
	if err != nil {
		log.Printf("invoice %s: archival render failed: %v", recomputed.InvoiceNumber, err)
		return receipt, nil
	}
	location, err := s.store.Save(ctx, name, pdfContentType, data)
	if err != nil {
		log.Printf("invoice %s: archival failed: %v", recomputed.InvoiceNumber, err)
		return receipt, nil
	}
	receipt.ArtifactLocation = location
	if url, err := s.store.PresignedURL(ctx, name, s.presignExpiry); err == nil {
		receipt.ArtifactURL = url
	}

	if notify.Email != "" {
		link := receipt.ArtifactURL
		if link == "" {
			link = receipt.ArtifactLocation
		}
		if err := s.email.SendInvoiceIssued(ctx, notify.Email, notify.Name, recomputed.InvoiceNumber, link); err != nil {
			log.Printf("invoice %s: notification to %s failed: %v", recomputed.InvoiceNumber, notify.Email, err)
		} else {
			receipt.EmailSent = true
		}
	}
	return receipt, nil
}
