package gateway

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"padaria-pedidos/internal/domain"
)

// productPattern recognizes one price-list row fragment: a name, an
// em-dash, and an "R$" price with two decimal digits, comma or dot.
// Example: "Pão Francês — R$0,80".
var productPattern = regexp.MustCompile(`(.+?)\s*—\s*R\$\s*(\d+[,.]\d{2})`)

// MenuTextExtractor implements usecase.MenuSource over plain UTF-8 text
// files. It only recognizes row shape; price validation is the catalog's
// job, so a row that matches the pattern is passed through verbatim.
type MenuTextExtractor struct{}

// NewMenuTextExtractor creates a new extractor instance.
func NewMenuTextExtractor() *MenuTextExtractor {
	return &MenuTextExtractor{}
}

// MenuPairs reads the price list at path and extracts its (name, price
// text) rows.
func (e *MenuTextExtractor) MenuPairs(ctx context.Context, path string) ([]domain.ExtractedPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price list %s: %w", path, err)
	}
	return ExtractPairs(string(text)), nil
}

// ExtractPairs scans raw price-list text for product rows. A single line
// may carry several items separated by "|"; lines or fragments that do not
// match the row shape (headers, dividers, blanks) are skipped — they carry
// no price to lose.
func ExtractPairs(text string) []domain.ExtractedPair {
	var pairs []domain.ExtractedPair
	for _, line := range strings.Split(text, "\n") {
		for _, part := range strings.Split(line, "|") {
			m := productPattern.FindStringSubmatch(strings.TrimSpace(part))
			if m == nil {
				continue
			}
			pairs = append(pairs, domain.ExtractedPair{
				Name:      strings.TrimSpace(m[1]),
				PriceText: "R$" + m[2],
			})
		}
	}
	return pairs
}
