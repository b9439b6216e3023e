package usecase

import (
	"padaria-pedidos/internal/domain"
)

// PricingEngine turns parsed mentions into a fully priced order.
type PricingEngine struct {
	matcher *Matcher
}

// NewPricingEngine creates a pricing engine over the given matcher.
func NewPricingEngine(matcher *Matcher) *PricingEngine {
	return &PricingEngine{matcher: matcher}
}

// Price resolves every mention against the catalog and computes the order
// total. All-or-nothing: if any mention stays unresolved the whole order
// fails with OrderHasUnresolvedItemsError carrying every unresolved
// mention, and no PricedOrder is constructed — a customer-facing total must
// reflect every requested item or none.
//
// Price never touches the transaction recorder; committing is a separate,
// explicit step so the caller can show the order for confirmation first.
func (p *PricingEngine) Price(mentions []domain.OrderLineMention, catalog *domain.Catalog, customerID string) (*domain.PricedOrder, error) {
	lines := make([]domain.ResolvedLine, 0, len(mentions))
	var unresolved []domain.UnresolvedMention
	for _, mention := range mentions {
		line, miss := p.matcher.Resolve(mention, catalog)
		if miss != nil {
			unresolved = append(unresolved, *miss)
			continue
		}
		lines = append(lines, *line)
	}
	if len(unresolved) > 0 {
		return nil, &domain.OrderHasUnresolvedItemsError{Unresolved: unresolved}
	}

	order := domain.NewPricedOrder(customerID, lines)
	return &order, nil
}
