package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padaria-pedidos/internal/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "comma decimal with prefix", input: "R$0,80", want: "0.80"},
		{name: "dot decimal with prefix", input: "R$38.00", want: "38.00"},
		{name: "prefix with space", input: "R$ 5,00", want: "5.00"},
		{name: "bare amount", input: "6.00", want: "6.00"},
		{name: "whole number", input: "R$40", want: "40.00"},
		{name: "zero is allowed", input: "R$0,00", want: "0.00"},
		{name: "empty", input: "", wantErr: true},
		{name: "prefix only", input: "R$", wantErr: true},
		{name: "not a number", input: "R$abc", wantErr: true},
		{name: "negative", input: "R$-1,00", wantErr: true},
		{name: "three decimal digits", input: "R$1,005", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePrice(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestBuildCatalog(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []domain.ExtractedPair
		wantErr string // substring of the CatalogParseError, empty for success
	}{
		{
			name: "valid catalog",
			pairs: []domain.ExtractedPair{
				{Name: "Pão Francês", PriceText: "R$0,80"},
				{Name: "Coxinha", PriceText: "R$6,00"},
			},
		},
		{
			name:    "no entries",
			pairs:   nil,
			wantErr: "no entries",
		},
		{
			name: "malformed price is a hard error",
			pairs: []domain.ExtractedPair{
				{Name: "Coxinha", PriceText: "R$6,00"},
				{Name: "Esfirra", PriceText: "gratis"},
			},
			wantErr: "Esfirra",
		},
		{
			name: "duplicate normalized names rejected",
			pairs: []domain.ExtractedPair{
				{Name: "Pão Francês", PriceText: "R$0,80"},
				{Name: "pao frances", PriceText: "R$0,90"},
			},
			wantErr: "collides",
		},
		{
			name: "name empty after normalization",
			pairs: []domain.ExtractedPair{
				{Name: "---", PriceText: "R$1,00"},
			},
			wantErr: "empty after normalization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := domain.BuildCatalog(tt.pairs)
			if tt.wantErr != "" {
				var parseErr *domain.CatalogParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, catalog)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.pairs), catalog.Len())
		})
	}
}

func TestCatalogOrderAndLookup(t *testing.T) {
	catalog, err := domain.BuildCatalog([]domain.ExtractedPair{
		{Name: "Coxinha", PriceText: "R$6,00"},
		{Name: "Esfirra", PriceText: "R$5,00"},
		{Name: "Torta de Limão", PriceText: "R$40,00"},
	})
	require.NoError(t, err)

	entries := catalog.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Coxinha", entries[0].Name)
	assert.Equal(t, "Esfirra", entries[1].Name)
	assert.Equal(t, "Torta de Limão", entries[2].Name)

	candidates := catalog.Candidates()
	require.Len(t, candidates, 3)
	assert.Equal(t, "torta de limao", candidates[2].Key)
	// Entry references are stable across calls: resolutions point at the
	// catalog, they do not copy it.
	assert.Same(t, candidates[2].Entry, catalog.Candidates()[2].Entry)

	entry, ok := catalog.Lookup("torta de limão")
	require.True(t, ok)
	assert.Equal(t, "Torta de Limão", entry.Name)
	assert.Equal(t, "40.00", entry.UnitPrice.StringFixed(2))

	_, ok = catalog.Lookup("pizza")
	assert.False(t, ok)
}

func TestNewResolvedLineRounding(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
	}{
		{name: "two decimal price stays exact", price: "0.80", quantity: 2, want: "1.60"},
		{name: "half rounds up", price: "0.335", quantity: 1, want: "0.34"},
		{name: "half rounds up after multiply", price: "0.335", quantity: 3, want: "1.01"},
		{name: "below half rounds down", price: "0.332", quantity: 1, want: "0.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &domain.CatalogEntry{Name: "Item", UnitPrice: decimal.RequireFromString(tt.price)}
			line := domain.NewResolvedLine(tt.quantity, entry)
			assert.Equal(t, tt.want, line.LineTotal.StringFixed(2))
			assert.Same(t, entry, line.Item)
		})
	}
}

func TestNewPricedOrderTotalIsSumOfLines(t *testing.T) {
	coxinha := &domain.CatalogEntry{Name: "Coxinha", UnitPrice: decimal.RequireFromString("6.00")}
	esfirra := &domain.CatalogEntry{Name: "Esfirra", UnitPrice: decimal.RequireFromString("5.00")}

	lines := []domain.ResolvedLine{
		domain.NewResolvedLine(1, coxinha),
		domain.NewResolvedLine(2, esfirra),
	}
	order := domain.NewPricedOrder("Ana", lines)

	sum := decimal.Zero
	for _, l := range order.Lines {
		sum = sum.Add(l.LineTotal)
	}
	assert.True(t, order.Total.Equal(sum), "total must equal the sum of line totals")
	assert.Equal(t, "R$16.00", order.TotalText())
	assert.Equal(t, "1 Coxinha — R$6.00 | 2 Esfirra — R$10.00", order.ItemizedDescription())
}
