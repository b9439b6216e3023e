package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padaria-pedidos/internal/domain"
	"padaria-pedidos/internal/usecase"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      []domain.OrderLineMention
		wantEmpty bool
	}{
		{
			name:      "single item with quantity",
			utterance: "2 pao frances",
			want:      []domain.OrderLineMention{{Quantity: 2, RawName: "pao frances"}},
		},
		{
			name:      "word separator e",
			utterance: "1 Coxinha e 2 Esfirra e 1 Torta de Limão",
			want: []domain.OrderLineMention{
				{Quantity: 1, RawName: "Coxinha"},
				{Quantity: 2, RawName: "Esfirra"},
				{Quantity: 1, RawName: "Torta de Limão"},
			},
		},
		{
			name:      "comma plus pipe and newline separators",
			utterance: "coxinha, 2 esfirra + 3 sonho | cafe\n2 bolo",
			want: []domain.OrderLineMention{
				{Quantity: 1, RawName: "coxinha"},
				{Quantity: 2, RawName: "esfirra"},
				{Quantity: 3, RawName: "sonho"},
				{Quantity: 1, RawName: "cafe"},
				{Quantity: 2, RawName: "bolo"},
			},
		},
		{
			name:      "missing quantity defaults to one",
			utterance: "torta de limao",
			want:      []domain.OrderLineMention{{Quantity: 1, RawName: "torta de limao"}},
		},
		{
			name:      "multi digit quantity",
			utterance: "12 paes",
			want:      []domain.OrderLineMention{{Quantity: 12, RawName: "paes"}},
		},
		{
			name:      "item name containing de is not split",
			utterance: "1 bolo de cenoura",
			want:      []domain.OrderLineMention{{Quantity: 1, RawName: "bolo de cenoura"}},
		},
		{
			name:      "leading zero is not a quantity",
			utterance: "0 coxinha",
			want:      []domain.OrderLineMention{{Quantity: 1, RawName: "0 coxinha"}},
		},
		{
			name:      "empty fragments between separators are dropped",
			utterance: ", ,2 coxinha,,",
			want:      []domain.OrderLineMention{{Quantity: 2, RawName: "coxinha"}},
		},
		{
			name:      "blank utterance",
			utterance: "   ",
			wantEmpty: true,
		},
		{
			name:      "pure punctuation",
			utterance: "?!, — ...",
			wantEmpty: true,
		},
		{
			name:      "empty string",
			utterance: "",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ParseOrder(tt.utterance)
			if tt.wantEmpty {
				var emptyErr *domain.EmptyOrderError
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, tt.utterance, emptyErr.Utterance)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
