package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// seqPattern matches the trailing 3-digit sequence of an invoice number.
var seqPattern = regexp.MustCompile(`(?i)(\d{3})$`)

// ShortYear derives the two-digit-pair year code from a financial year label:
// "2025-2026" becomes "2526", a bare 4-digit year passes through unchanged,
// anything else yields "".
func ShortYear(finYear string) string {
	if finYear == "" {
		return ""
	}
	if len(finYear) == 4 {
		return finYear
	}
	if len(finYear) >= 9 && strings.Contains(finYear, "-") {
		parts := strings.SplitN(finYear, "-", 2)
		return tail(parts[0]) + tail(parts[1])
	}
	return ""
}

func tail(s string) string {
	if len(s) <= 2 {
		return ""
	}
	return s[2:]
}

// NextSequence parses the trailing 3-digit sequence of the highest issued
// invoice number and returns it incremented, zero-padded to 3 digits.
// Missing or malformed input defaults to "001".
func NextSequence(maxNumber string) string {
	if maxNumber == "" {
		return "001"
	}
	m := seqPattern.FindStringSubmatch(maxNumber)
	if m == nil {
		return "001"
	}
	last, err := strconv.Atoi(m[1])
	if err != nil {
		return "001"
	}
	return fmt.Sprintf("%03d", last+1)
}

// Compose assembles the final invoice number.
func Compose(prefix, shortYear, sequence string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, shortYear, sequence)
}
