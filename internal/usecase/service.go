package usecase

import (
	"context"
	"fmt"

	"padaria-pedidos/internal/domain"
)

// CatalogLoader builds the session catalog from an extraction source.
type CatalogLoader struct {
	source MenuSource
}

// NewCatalogLoader creates a loader over the given menu source.
func NewCatalogLoader(source MenuSource) *CatalogLoader {
	return &CatalogLoader{source: source}
}

// Load extracts pairs from the document at path and validates them into a
// Catalog. A source error or an invalid catalog aborts session startup.
func (l *CatalogLoader) Load(ctx context.Context, path string) (*domain.Catalog, error) {
	pairs, err := l.source.MenuPairs(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not extract menu pairs: %w", err)
	}
	return domain.BuildCatalog(pairs)
}

// OrderService orchestrates one customer order: quote, then commit. The two
// steps are deliberately separate so the caller can present the quoted
// order for confirmation before anything reaches the durable log.
type OrderService struct {
	engine   *PricingEngine
	recorder OrderRecorder
}

// NewOrderService wires the pricing engine to a transaction recorder.
func NewOrderService(engine *PricingEngine, recorder OrderRecorder) *OrderService {
	return &OrderService{engine: engine, recorder: recorder}
}

// Quote parses the utterance and prices it against the catalog. It has no
// side effects: nothing is recorded. Errors pass through unchanged so the
// caller can distinguish an empty order from unresolved items.
func (s *OrderService) Quote(utterance string, catalog *domain.Catalog, customerID string) (*domain.PricedOrder, error) {
	mentions, err := ParseOrder(utterance)
	if err != nil {
		return nil, err
	}
	return s.engine.Price(mentions, catalog, customerID)
}

// Commit appends the confirmed order to the transaction log. A failed
// append is surfaced distinctly so the caller can retry or hold the order
// rather than lose the transaction.
func (s *OrderService) Commit(ctx context.Context, order domain.PricedOrder) error {
	if err := s.recorder.Append(ctx, order); err != nil {
		return fmt.Errorf("could not record order for %q: %w", order.CustomerID, err)
	}
	return nil
}
