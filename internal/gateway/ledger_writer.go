package gateway

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"padaria-pedidos/internal/domain"
)

// ledgerHeader labels the three record fields. Written once, when the
// ledger file is still empty.
const ledgerHeader = "Cliente;Itens;Total"

// LedgerWriter implements usecase.OrderRecorder as an append-only,
// ';'-delimited UTF-8 text file: one record per line, fields
// customer id; itemized lines joined " | "; total. No update or delete —
// corrections require a new compensating record.
type LedgerWriter struct {
	path string
	mu   sync.Mutex
}

// NewLedgerWriter creates a writer appending to the file at path. The file
// is created on first append.
func NewLedgerWriter(path string) *LedgerWriter {
	return &LedgerWriter{path: path}
}

// Append writes one order record. Appends are serialized under a mutex and
// each record goes out in a single write followed by a sync, so concurrent
// orders never interleave partial records into the log.
func (w *LedgerWriter) Append(ctx context.Context, order domain.PricedOrder) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ledger %s: %w", w.path, err)
	}

	var b strings.Builder
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat ledger %s: %w", w.path, err)
	}
	if info.Size() == 0 {
		b.WriteString(ledgerHeader)
		b.WriteByte('\n')
	}
	b.WriteString(FormatRecord(order))
	b.WriteByte('\n')

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to append record to %s: %w", w.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync ledger %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close ledger %s: %w", w.path, err)
	}
	return nil
}

// FormatRecord renders one ledger record, without the trailing newline:
// "Ana;2 Pão Francês — R$1.60 | 1 Coxinha — R$6.00;R$7.60".
func FormatRecord(order domain.PricedOrder) string {
	return strings.Join([]string{
		order.CustomerID,
		order.ItemizedDescription(),
		order.TotalText(),
	}, ";")
}
