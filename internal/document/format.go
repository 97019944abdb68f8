// Package document renders an invoice draft into fixed-layout documents.
// The PDF layout is pixel-stable: coordinates are constants, not derived
// from content, except for the vertical flow below the client block.
package document

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount with Indian digit grouping (last three digits,
// then groups of two) and exactly two decimal places, e.g. 1234567.5 ->
// "12,34,567.50".
func FormatINR(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	decPart := s[len(s)-3:]

	grouped := groupIndian(intPart)
	if neg {
		return "-" + grouped + decPart
	}
	return grouped + decPart
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
