package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/invoice"
)

func TestShortYear(t *testing.T) {
	assert.Equal(t, "2526", invoice.ShortYear("2025-2026"))
	assert.Equal(t, "2425", invoice.ShortYear("2024-2025"))
	assert.Equal(t, "2025", invoice.ShortYear("2025")) // bare year passes through
	assert.Equal(t, "", invoice.ShortYear(""))
	assert.Equal(t, "", invoice.ShortYear("25-26")) // too short for the long form
}

func TestNextSequence(t *testing.T) {
	assert.Equal(t, "008", invoice.NextSequence("LIT/2526/007"))
	assert.Equal(t, "001", invoice.NextSequence(""))
	assert.Equal(t, "001", invoice.NextSequence("LIT/2526/ABC"))
	assert.Equal(t, "100", invoice.NextSequence("LIT/2526/099"))
	assert.Equal(t, "001", invoice.NextSequence("LIT/2526/000"))
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "LIT/2526/008", invoice.Compose("LIT", "2526", "008"))
}

func TestNumbering_EndToEnd(t *testing.T) {
	short := invoice.ShortYear("2025-2026")
	next := invoice.NextSequence("LIT/" + short + "/007")
	assert.Equal(t, "LIT/2526/008", invoice.Compose("LIT", short, next))

	// no prior max for the year
	next = invoice.NextSequence("")
	assert.Equal(t, "LIT/2526/001", invoice.Compose("LIT", short, next))
}
