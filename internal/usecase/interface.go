package usecase

import (
	"context"

	"padaria-pedidos/internal/domain"
)

// Collaborator interfaces for the order pipeline. The usecase layer depends
// on these, not on concrete gateway implementations.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go MenuSource,OrderRecorder,Scorer

// MenuSource produces the raw (name, price text) pairs extracted from a
// price-list document. How the text is obtained (PDF, OCR, plain file) is
// the source's concern.
type MenuSource interface {
	MenuPairs(ctx context.Context, path string) ([]domain.ExtractedPair, error)
}

// OrderRecorder is the append-only transaction log sink. One call appends
// one durable record; implementations must serialize concurrent appends and
// must report failure rather than leave a partial write behind.
type OrderRecorder interface {
	Append(ctx context.Context, order domain.PricedOrder) error
}

// Scorer computes a similarity score in [0, 1] between two normalized item
// names, 1 meaning identical. Pluggable so a learned matcher can replace
// the edit-distance reference without touching the parser or the pricing
// engine.
type Scorer interface {
	Similarity(a, b string) float64
}
