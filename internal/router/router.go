package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/handler"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	invoiceH *handler.InvoiceHandler,
	referenceH *handler.ReferenceHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	reference := v1.Group("/reference")
	reference.GET("", referenceH.All)
	reference.GET("/financial-years", referenceH.FinancialYears)
	reference.GET("/hsn-codes", referenceH.HSNCodes)
	reference.GET("/tax-types", referenceH.TaxTypes)

	invoices := v1.Group("/invoices")
	invoices.GET("/next-number", invoiceH.NextNumber)
	invoices.POST("/preview", invoiceH.Preview)
	invoices.POST("/validate", invoiceH.Validate)
	invoices.POST("/pdf", invoiceH.ExportPDF)
	invoices.POST("/xlsx", invoiceH.ExportXLSX)
	invoices.POST("", invoiceH.Submit)

	return r
}
