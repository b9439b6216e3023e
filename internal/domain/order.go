package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderLineMention is an unresolved fragment of the customer's utterance:
// a quantity and the item text as spoken.
type OrderLineMention struct {
	Quantity int    `json:"quantity"`
	RawName  string `json:"raw_name"`
}

// UnresolvedMention marks a mention the matcher could not confidently map
// to a catalog entry. It is a first-class result, not an exception: the
// offending text is surfaced back to the customer, never dropped or priced
// at zero.
type UnresolvedMention struct {
	RawName string `json:"raw_name"`
}

// ResolvedLine is one priced order line. Item points into the session
// catalog rather than copying it.
type ResolvedLine struct {
	Quantity  int             `json:"quantity"`
	Item      *CatalogEntry   `json:"item"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// NewResolvedLine prices a quantity of an entry. The product is rounded
// half-up to two decimal places; quantities are exact integers so no other
// rounding ever happens on a line.
func NewResolvedLine(quantity int, item *CatalogEntry) ResolvedLine {
	total := item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	return ResolvedLine{Quantity: quantity, Item: item, LineTotal: total}
}

// Describe renders the line in record form: "2 Pão Francês — R$1.60".
func (l ResolvedLine) Describe() string {
	return fmt.Sprintf("%d %s — %s", l.Quantity, l.Item.Name, FormatPrice(l.LineTotal))
}

// PricedOrder is a fully resolved, fully priced order ready for
// confirmation and recording. Total is always the exact sum of the line
// totals; there is no independent computation path.
type PricedOrder struct {
	CustomerID string          `json:"customer_id"`
	Lines      []ResolvedLine  `json:"lines"`
	Total      decimal.Decimal `json:"total"`
}

// NewPricedOrder assembles an order from resolved lines, deriving Total
// from the lines so itemized and aggregate figures can never drift.
func NewPricedOrder(customerID string, lines []ResolvedLine) PricedOrder {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal)
	}
	return PricedOrder{CustomerID: customerID, Lines: lines, Total: total}
}

// ItemizedDescription joins the rendered lines with " | ", the record form
// used by the transaction ledger.
func (o PricedOrder) ItemizedDescription() string {
	parts := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		parts[i] = l.Describe()
	}
	return strings.Join(parts, " | ")
}

// TotalText renders the order total: "R$56.00".
func (o PricedOrder) TotalText() string {
	return FormatPrice(o.Total)
}
