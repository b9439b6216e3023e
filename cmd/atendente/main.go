package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"padaria-pedidos/internal/domain"
	"padaria-pedidos/internal/gateway"
	"padaria-pedidos/internal/usecase"
)

func main() {
	// .env is optional; flags below still override anything it sets.
	_ = godotenv.Load()

	menuPath := flag.String("menu", envOr("MENU_PATH", "ListaPrecos.txt"), "Path to the price list text file")
	ledgerPath := flag.String("ledger", envOr("LEDGER_PATH", "pedidos.csv"), "Path to the order ledger file")
	threshold := flag.Float64("threshold", envFloat("MATCH_THRESHOLD", 0.6), "Minimum similarity for an item match")
	margin := flag.Float64("margin", envFloat("MATCH_MARGIN", 0.05), "Required lead over the runner-up match")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	// --- Dependency wiring, outermost layer first ---
	source := gateway.NewMenuTextExtractor()
	loader := usecase.NewCatalogLoader(source)
	recorder := gateway.NewLedgerWriter(*ledgerPath)

	catalog, err := loader.Load(ctx, *menuPath)
	if err != nil {
		// A malformed or ambiguous price list is fatal to the session; the
		// source document is static so there is nothing to retry.
		logger.Fatal("could not build catalog", zap.String("menu", *menuPath), zap.Error(err))
	}
	logger.Info("catalog ready", zap.String("menu", *menuPath), zap.Int("items", catalog.Len()))

	matcher := usecase.NewMatcher(usecase.LevenshteinScorer{}, usecase.MatcherConfig{
		Threshold: *threshold,
		Margin:    *margin,
	})
	service := usecase.NewOrderService(usecase.NewPricingEngine(matcher), recorder)

	printMenu(catalog)

	in := bufio.NewScanner(os.Stdin)
	customer, _ := prompt(in, "Por favor, digite seu nome: ")
	if customer == "" {
		customer = "Cliente"
	}
	fmt.Printf("\nOlá, %s! Bem-vindo(a) à Padaria.\n\n", customer)

	var lines []domain.ResolvedLine
	for {
		utterance, ok := prompt(in, "Insira os itens que deseja (ex: 2 pães franceses e 1 café): ")
		if !ok || isExitWord(utterance) {
			break
		}

		order, err := service.Quote(utterance, catalog, customer)
		if err != nil {
			var empty *domain.EmptyOrderError
			var unresolved *domain.OrderHasUnresolvedItemsError
			switch {
			case errors.As(err, &empty):
				fmt.Println("Não encontrei nenhum item no pedido. Tente novamente.")
			case errors.As(err, &unresolved):
				// Name the offending text back; never a generic failure.
				for _, raw := range unresolved.RawNames() {
					fmt.Printf("Aviso: não encontramos %q no cardápio.\n", raw)
				}
				fmt.Println("Por favor, repita o pedido com itens do cardápio.")
			default:
				logger.Error("could not price order", zap.Error(err))
			}
			continue
		}

		lines = append(lines, order.Lines...)
		running := domain.NewPricedOrder(customer, lines)
		fmt.Printf("Itens adicionados. Subtotal atual: %s\n", running.TotalText())
		fmt.Println(strings.Repeat("-", 55))

		answer, ok := prompt(in, "Deseja pedir mais algum item? (s/n): ")
		if !ok || !isAffirmative(answer) {
			break
		}
	}

	if len(lines) == 0 {
		fmt.Println("Nenhum item foi pedido. Volte sempre!")
		return
	}

	final := domain.NewPricedOrder(customer, lines)
	printSummary(final)

	if err := service.Commit(ctx, final); err != nil {
		// The order is shown but not lost: the caller may re-run the commit.
		logger.Error("could not append order to ledger", zap.String("ledger", *ledgerPath), zap.Error(err))
		fmt.Println("Não foi possível salvar o pedido. Anote o resumo acima.")
		return
	}
	logger.Info("order recorded",
		zap.String("customer", final.CustomerID),
		zap.Int("lines", len(final.Lines)),
		zap.String("total", final.TotalText()),
	)
	fmt.Printf("\nPedido salvo em %q. Obrigado pela preferência!\n", *ledgerPath)
}

func printMenu(catalog *domain.Catalog) {
	fmt.Println(strings.Repeat("-", 55))
	fmt.Println("     Padaria — Lista de Preços e Atendimento")
	fmt.Println(strings.Repeat("-", 55))
	for _, entry := range catalog.Entries() {
		fmt.Printf("• %s %s\n", padDots(entry.Name, 30), displayPriceBR(entry))
	}
	fmt.Println(strings.Repeat("-", 55))
}

func printSummary(order domain.PricedOrder) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf(" RESUMO DO PEDIDO DE %s:\n", strings.ToUpper(order.CustomerID))
	fmt.Println(strings.Repeat("=", 50))
	for _, line := range order.Lines {
		fmt.Printf("- %s\n", line.Describe())
	}
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("TOTAL A PAGAR: %s\n", order.TotalText())
	fmt.Println(strings.Repeat("=", 50))
}

// displayPriceBR renders a price for the on-screen menu with the Brazilian
// comma decimal separator; ledger records keep the dot form.
func displayPriceBR(entry domain.CatalogEntry) string {
	return "R$" + strings.ReplaceAll(entry.UnitPrice.StringFixed(2), ".", ",")
}

// padDots right-pads a name with dots up to width, aligning the price column.
func padDots(name string, width int) string {
	if len([]rune(name)) >= width {
		return name
	}
	return name + strings.Repeat(".", width-len([]rune(name)))
}

// prompt reads one trimmed line; ok is false once stdin is exhausted.
func prompt(in *bufio.Scanner, label string) (line string, ok bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func isExitWord(s string) bool {
	switch strings.ToLower(s) {
	case "sair", "finalizar", "x":
		return true
	}
	return false
}

func isAffirmative(s string) bool {
	switch strings.ToLower(s) {
	case "s", "sim":
		return true
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
