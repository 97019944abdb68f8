package service

import (
	"context"
	"sync"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/port"
)

// NumberingResolver resolves the next invoice number for a financial year.
// Resolutions run concurrently when the selected year changes quickly; only
// the most recently started resolution wins, older ones report stale so the
// caller can discard them.
type NumberingResolver struct {
	ref    port.ReferenceClient
	prefix string

	mu         sync.Mutex
	generation uint64
}

// NewNumberingResolver creates a resolver composing numbers as
// "<prefix>/<shortYear>/<seq>".
func NewNumberingResolver(ref port.ReferenceClient, prefix string) *NumberingResolver {
	return &NumberingResolver{ref: ref, prefix: prefix}
}

// Resolve returns the next invoice number for finYear. stale is true when a
// newer resolution started while this one was fetching; its number must not
// be used. Resolve never fails: backend trouble degrades to the first
// sequence of the year.
func (r *NumberingResolver) Resolve(ctx context.Context, finYear string) (number string, stale bool) {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.mu.Unlock()

	short := invoice.ShortYear(finYear)
	max := r.ref.MaxInvoiceNumber(ctx, short)
	next := invoice.Compose(r.prefix, short, invoice.NextSequence(max))

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		return "", true
	}
	return next, false
}
