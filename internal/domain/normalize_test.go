package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"padaria-pedidos/internal/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "accents stripped and case folded",
			input: "Pão Francês",
			want:  "pao frances",
		},
		{
			name:  "cedilla and tilde",
			input: "Torta de Limão com Açúcar",
			want:  "torta de limao com acucar",
		},
		{
			name:  "punctuation becomes separator",
			input: "Café-com-leite",
			want:  "cafe com leite",
		},
		{
			name:  "whitespace collapsed",
			input: "  Bolo   Inteiro \t Chocolate ",
			want:  "bolo inteiro chocolate",
		},
		{
			name:  "em dash and currency symbol dropped",
			input: "Sonho — $",
			want:  "sonho",
		},
		{
			name:  "digits survive",
			input: "Refrigerante 2L",
			want:  "refrigerante 2l",
		},
		{
			name:  "pure punctuation is empty",
			input: "?!... —",
			want:  "",
		},
		{
			name:  "blank is empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeName(tt.input))
		})
	}
}
