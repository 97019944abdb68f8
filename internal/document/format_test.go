package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/document"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{295, "295.00"},
		{1234.5, "1,234.50"},
		{123456, "1,23,456.00"},
		{1234567.5, "12,34,567.50"},
		{12345678.99, "1,23,45,678.99"},
		{-45678, "-45,678.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, document.FormatINR(tc.in), "FormatINR(%v)", tc.in)
	}
}
