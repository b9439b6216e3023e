package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"padaria-pedidos/internal/domain"
)

// separatorPattern splits an utterance into line-item fragments. The word
// "e" is only a separator when whitespace-bounded, so item names containing
// it ("Torta de Limão") survive intact; the symbolic separators split
// anywhere.
var separatorPattern = regexp.MustCompile(`\s+e\s+|[,+|\n]`)

// quantityPattern captures a leading positive integer quantity. A leading
// "0" is not a quantity; the fragment is kept whole and left for the
// matcher to reject visibly.
var quantityPattern = regexp.MustCompile(`^([1-9][0-9]*)\s+(.+)$`)

// ParseOrder splits a raw order utterance into discrete line mentions:
// "1 Coxinha e 2 Esfirra" becomes (1, "Coxinha"), (2, "Esfirra"). Fragments
// without a leading quantity default to 1. Fragments that normalize to
// nothing are discarded; if none remain the order is empty and must not
// proceed to a zero-total confirmation.
func ParseOrder(utterance string) ([]domain.OrderLineMention, error) {
	var mentions []domain.OrderLineMention
	for _, frag := range separatorPattern.Split(utterance, -1) {
		frag = strings.TrimSpace(frag)
		if domain.NormalizeName(frag) == "" {
			continue
		}

		quantity := 1
		name := frag
		if m := quantityPattern.FindStringSubmatch(frag); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				quantity = n
				name = strings.TrimSpace(m[2])
			}
		}
		mentions = append(mentions, domain.OrderLineMention{Quantity: quantity, RawName: name})
	}

	if len(mentions) == 0 {
		return nil, &domain.EmptyOrderError{Utterance: utterance}
	}
	return mentions, nil
}
