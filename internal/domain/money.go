package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice parses a menu price fragment such as "R$0,80", "R$ 38,00" or
// "5.00" into a fixed-point amount. Comma and dot are both accepted as the
// decimal separator. Prices must be non-negative and carry at most two
// decimal digits; anything else is malformed.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty price text %q", text)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable price %q: %w", text, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", text)
	}
	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("price %q has more than two decimal digits", text)
	}
	return d, nil
}

// FormatPrice renders an amount the way records and totals display it: "R$1.60".
func FormatPrice(d decimal.Decimal) string {
	return "R$" + d.StringFixed(2)
}
