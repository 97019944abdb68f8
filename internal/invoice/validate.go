package invoice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/domain"
)

// namePattern allows alphabetic characters and spaces only.
var namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

// Validate checks the draft's required fields and per-item constraints.
// It is a pure function with no side effects; both document export and
// submission gate on exactly this rule set.
func Validate(d domain.InvoiceDraft) domain.ValidationResult {
	fieldErrors := map[string]string{}

	name := strings.TrimSpace(d.ClientName)
	if name == "" {
		fieldErrors["clientName"] = "Client Name is required"
	} else if !namePattern.MatchString(name) {
		fieldErrors["clientName"] = "Only alphabets and spaces allowed"
	}
	if strings.TrimSpace(d.Address) == "" {
		fieldErrors["address"] = "Address is required"
	}
	if strings.TrimSpace(d.State) == "" {
		fieldErrors["state"] = "State is required"
	}
	if strings.TrimSpace(d.Date) == "" {
		fieldErrors["date"] = "Date is required"
	}
	if strings.TrimSpace(d.PinCode) == "" {
		fieldErrors["pinCode"] = "Pin Code is required"
	}

	itemErrors := make([]map[string]string, len(d.Items))
	for i, item := range d.Items {
		errs := map[string]string{}
		if strings.TrimSpace(item.Description) == "" {
			errs["description"] = "Description required"
		}
		if rate, err := strconv.ParseFloat(item.Rate, 64); item.Rate == "" || err != nil || rate < 0 {
			errs["rate"] = "Valid rate required"
		}
		if item.Quantity <= 0 {
			errs["quantity"] = "Quantity must be > 0"
		}
		itemErrors[i] = errs
	}

	return domain.ValidationResult{FieldErrors: fieldErrors, ItemErrors: itemErrors}
}
