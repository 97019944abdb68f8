// Package refdata is the HTTP client for the legacy reference backend
// (financial years, tax types, HSN codes, invoice transactions). Lookup
// calls degrade to safe defaults on any failure so the invoice form is
// never blocked by missing reference data.
package refdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/config"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/words"
)

// Client talks to the legacy reference backend over HTTP.
type Client struct {
	baseURL string
	prefix  string
	client  *http.Client
	now     func() time.Time
}

// NewClient creates a reference backend client. prefix is the invoice number
// prefix used when composing fallback values.
func NewClient(cfg *config.UpstreamConfig, prefix string) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		prefix:  prefix,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

var _ port.ReferenceClient = (*Client)(nil)

// FinancialYears returns all financial years. On any failure it returns a
// single synthetic current-year record (April to March) so the form remains
// usable.
func (c *Client) FinancialYears(ctx context.Context) []domain.FinancialYear {
	var years []domain.FinancialYear
	if err := c.getList(ctx, "/InvoiceYear/GetAll", &years); err != nil {
		log.Printf("refdata: financial years lookup failed, using synthetic year: %v", err)
		return []domain.FinancialYear{c.syntheticYear()}
	}
	if len(years) == 0 {
		return []domain.FinancialYear{c.syntheticYear()}
	}
	return years
}

func (c *Client) syntheticYear() domain.FinancialYear {
	now := c.now()
	start := now.Year()
	if now.Month() < time.April {
		start--
	}
	return domain.FinancialYear{
		ID:        1,
		FinYear:   fmt.Sprintf("%d-%d", start, start+1),
		StartDate: fmt.Sprintf("%d-04-01", start),
		EndDate:   fmt.Sprintf("%d-03-31", start+1),
		IsActive:  true,
	}
}

// maxNumberResponse tolerates the shapes the legacy backend has been seen to
// return: a bare string, {maxInvoiceNumber}, {data: {maxInvoiceNumber}}, or
// {data: "..."}.
type maxNumberResponse struct {
	MaxInvoiceNumber string          `json:"maxInvoiceNumber"`
	Data             json.RawMessage `json:"data"`
}

// MaxInvoiceNumber returns the highest invoice number issued for shortYear.
// Failure or an unrecognized response degrades to a zero-sequence
// placeholder.
func (c *Client) MaxInvoiceNumber(ctx context.Context, shortYear string) string {
	fallback := fmt.Sprintf("%s/%s/000", c.prefix, shortYear)

	body, err := c.get(ctx, "/InvoiceTransaction/GetMaxInvoiceNumberByFinYear?finYear="+url.QueryEscape(shortYear))
	if err != nil {
		log.Printf("refdata: max invoice number lookup failed for %s: %v", shortYear, err)
		return fallback
	}

	if s, ok := decodeMaxNumber(body); ok {
		return s
	}
	return fallback
}

func decodeMaxNumber(body []byte) (string, bool) {
	var bare string
	if err := json.Unmarshal(body, &bare); err == nil && bare != "" {
		return bare, true
	}

	var resp maxNumberResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false
	}
	if resp.MaxInvoiceNumber != "" {
		return resp.MaxInvoiceNumber, true
	}
	if len(resp.Data) > 0 {
		var nested maxNumberResponse
		if err := json.Unmarshal(resp.Data, &nested); err == nil && nested.MaxInvoiceNumber != "" {
			return nested.MaxInvoiceNumber, true
		}
		var s string
		if err := json.Unmarshal(resp.Data, &s); err == nil && s != "" {
			return s, true
		}
	}
	return "", false
}

// hsnRecord tolerates the field names the legacy backend mixes for HSN rows.
type hsnRecord struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	HSNCode     string `json:"hsnCode"`
	Description string `json:"description"`
}

// HSNCodes returns all HSN/SAC codes, normalized so Code is always set.
// Empty on failure.
func (c *Client) HSNCodes(ctx context.Context) []domain.HSNCode {
	var records []hsnRecord
	if err := c.getList(ctx, "/HsnCode/GetAll", &records); err != nil {
		log.Printf("refdata: HSN lookup failed: %v", err)
		return []domain.HSNCode{}
	}

	codes := make([]domain.HSNCode, 0, len(records))
	for _, r := range records {
		code := r.Code
		if code == "" {
			code = r.HSNCode
		}
		if code == "" && r.ID != 0 {
			code = strconv.Itoa(r.ID)
		}
		if code == "" {
			continue
		}
		codes = append(codes, domain.HSNCode{ID: r.ID, Code: code, Description: r.Description})
	}
	return codes
}

// TaxTypes returns all selectable tax types; empty on failure.
func (c *Client) TaxTypes(ctx context.Context) []domain.TaxType {
	var taxes []domain.TaxType
	if err := c.getList(ctx, "/Tax/GetAll", &taxes); err != nil {
		log.Printf("refdata: tax types lookup failed: %v", err)
		return []domain.TaxType{}
	}
	return taxes
}

// legacy wire shape for CreateInvoiceWithDescription.
type createInvoiceRequest struct {
	Invoice     wireInvoice     `json:"Invoice"`
	Description wireDescription `json:"Description"`
}

type wireInvoice struct {
	InvoiceNumber      string  `json:"invoiceNumber"`
	FinYear            string  `json:"finYear"`
	Date               string  `json:"date"`
	ClientName         string  `json:"clientName"`
	ClientAddress      string  `json:"clientAddress"`
	State              string  `json:"state"`
	District           string  `json:"district"`
	PinCode            string  `json:"pinCode"`
	TaxID              string  `json:"taxID"`
	ClientGSTNumber    string  `json:"clientGSTNumber"`
	ClientPANNumber    string  `json:"clientPANNumber"`
	GrandTotal         float64 `json:"grandTotal"`
	TotalInWords       string  `json:"totalInWords"`
	InvoiceDescription string  `json:"invoiceDescription"`
}

type wireDescription struct {
	FinYear            string  `json:"finYear"`
	InvoiceNumber      string  `json:"invoiceNumber"`
	InvoiceDescription string  `json:"invoiceDescription"`
	BreakupAmount      float64 `json:"breakupAmount"`
	Quantity           float64 `json:"quantity"`
	PerUnit            string  `json:"perUnit"`
}

type upstreamError struct {
	Message string `json:"message"`
	Title   string `json:"title"`
}

// CreateInvoice submits the invoice to the legacy backend, translating the
// submission payload into the wire shape its transaction endpoint expects.
func (c *Client) CreateInvoice(ctx context.Context, payload domain.SubmissionPayload) error {
	req := c.buildCreateRequest(payload)

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling create request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/InvoiceTransaction/CreateInvoiceWithDescription", bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamRejected, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamMessage(respBody, resp.Status)
		return fmt.Errorf("%w: %s", domain.ErrUpstreamRejected, msg)
	}
	return nil
}

func upstreamMessage(body []byte, status string) string {
	var e upstreamError
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Title != "" {
			return e.Title
		}
	}
	return status
}

func (c *Client) buildCreateRequest(payload domain.SubmissionPayload) createInvoiceRequest {
	finYear := c.finYearFromNumber(payload.Invoice.InvoiceNumber)

	date := payload.Invoice.Date
	if _, err := time.Parse("2006-01-02", date); err != nil {
		if t, err2 := time.Parse(time.RFC3339, date); err2 == nil {
			date = t.Format("2006-01-02")
		} else {
			date = c.now().Format("2006-01-02")
		}
	}

	grandTotal := payload.Invoice.GrandTotal
	if grandTotal == 0 {
		for _, item := range payload.Items {
			grandTotal += item.Total
		}
	}

	totalInWords := payload.Invoice.TotalInWords
	if totalInWords == "" {
		if w, err := words.ConvertAmount(grandTotal); err == nil {
			totalInWords = w + " only"
		}
	}

	var first domain.SubmissionItem
	if len(payload.Items) > 0 {
		first = payload.Items[0]
	}
	quantity := payload.Description.Quantity
	if quantity == 0 {
		quantity = 1
	}
	perUnit := payload.Description.PerUnit
	if perUnit == "" {
		perUnit = first.PerUnit
	}
	description := payload.Description.InvoiceDescription
	if description == "" {
		description = first.Description
	}

	return createInvoiceRequest{
		Invoice: wireInvoice{
			InvoiceNumber:      payload.Invoice.InvoiceNumber,
			FinYear:            finYear,
			Date:               date,
			ClientName:         payload.Invoice.ClientName,
			ClientAddress:      payload.Invoice.ClientAddress,
			State:              payload.Invoice.State,
			District:           payload.Invoice.District,
			PinCode:            payload.Invoice.PinCode,
			TaxID:              payload.Invoice.TaxID,
			ClientGSTNumber:    payload.Invoice.ClientGSTNumber,
			ClientPANNumber:    payload.Invoice.ClientPANNumber,
			GrandTotal:         grandTotal,
			TotalInWords:       totalInWords,
			InvoiceDescription: description,
		},
		Description: wireDescription{
			FinYear:            finYear,
			InvoiceNumber:      payload.Invoice.InvoiceNumber,
			InvoiceDescription: description,
			BreakupAmount:      grandTotal,
			Quantity:           quantity,
			PerUnit:            perUnit,
		},
	}
}

// finYearFromNumber extracts the 4-digit short year from an invoice number
// like "LIT/2526/008"; current calendar year when absent.
func (c *Client) finYearFromNumber(invoiceNumber string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(c.prefix) + `/(\d{4})/`)
	if m := re.FindStringSubmatch(invoiceNumber); m != nil {
		return m[1]
	}
	return strconv.Itoa(c.now().Year())
}

// get issues a GET against the backend and returns the raw body for 2xx.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// getList decodes a GET response that may be a bare array or wrapped in
// {data: [...]}.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if len(wrapped.Data) == 0 {
		return fmt.Errorf("decoding response: unrecognized shape")
	}
	return json.Unmarshal(wrapped.Data, out)
}
