// Command server runs the invoice form backend: reference data lookups,
// draft preview and validation, PDF/XLSX export and upstream submission.
//
// @title L-IT Raise Invoice API
// @version 1.0
// @description Invoice creation backend for L-IT Truly Services.
// @BasePath /api/v1
package main

import (
	"fmt"
	"log"

	_ "github.com/AmitKSwain/lit-raiseinvoice-invoice/docs"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/config"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/document"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/email/noop"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/email/ses"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/handler"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/refdata"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/router"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/service"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/storage/local"
	s3storage "github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	refClient := refdata.NewClient(&cfg.Upstream, cfg.Numbering.Prefix)

	store, err := newArtifactStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	emailSender, err := newEmailSender(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	renderer := document.NewRenderer(cfg.Issuer)
	policy := invoice.TaxPolicy{HomeState: cfg.Tax.HomeState, FallbackRate: cfg.Tax.FallbackRate}

	invoiceSvc := service.NewInvoiceService(refClient, store, emailSender, renderer, policy, cfg.Storage.PresignExpiry)
	numbering := service.NewNumberingResolver(refClient, cfg.Numbering.Prefix)

	invoiceH := handler.NewInvoiceHandler(invoiceSvc, numbering)
	referenceH := handler.NewReferenceHandler(refClient, invoiceSvc)
	healthH := handler.NewHealthHandler(cfg.Upstream.BaseURL)

	r := router.Setup(invoiceH, referenceH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newArtifactStore(cfg *config.Config) (port.ArtifactStore, error) {
	if cfg.Storage.Provider == "s3" {
		return s3storage.NewArtifactStore(&cfg.Storage)
	}
	return local.NewStore(cfg.Storage.LocalDir), nil
}

func newEmailSender(cfg *config.Config) (port.EmailSender, error) {
	if cfg.Email.Provider == "ses" {
		return ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
	}
	return noop.NewNoopSender(), nil
}
