package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"quitacao-report/internal/app"
	"quitacao-report/internal/core"
)

// Run executes the one-shot report for a sale and prints it to stdout.
// Errors and warnings go through log so they land on stderr.
func Run(ctx context.Context, svc app.ApplicationService, companyID int, siteCode string, saleNumber int) error {
	header, err := svc.GetSaleHeader(ctx, companyID, siteCode, saleNumber)
	switch {
	case err == nil:
		printHeader(header)
	case errors.Is(err, core.ErrSaleNotFound):
		log.Println("Nenhum detalhe de venda encontrado.")
	case errors.Is(err, app.ErrValidation):
		return err
	default:
		// Header failure does not block the payoff statement.
		log.Printf("Erro ao consultar detalhes da venda: %v", err)
	}

	st, err := svc.GetPayoffStatement(ctx, companyID, siteCode, saleNumber)
	if err != nil {
		return fmt.Errorf("erro ao consultar parcelas: %w", err)
	}
	printStatement(st)
	return nil
}

func printHeader(h *app.SaleHeaderResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  VENDA %d\n", h.SaleNumber)
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  Cliente          : %s\n", h.CustomerName)
	fmt.Printf("  CPF/CNPJ         : %s\n", h.Document)
	fmt.Printf("  Status           : %s\n", h.StatusLabel)
	fmt.Printf("  Empresa          : %s\n", h.CompanyName)
	fmt.Printf("  Obra             : %s\n", h.SiteName)
	fmt.Printf("  Data do Contrato : %s\n", h.ContractDate)
	fmt.Printf("  Identificador    : %s\n", h.UnitIdentifier)
}

func printStatement(st *app.PayoffStatementResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 98))
	fmt.Println("  VALORES PAGOS")
	fmt.Println(strings.Repeat("=", 98))

	if st.Empty {
		fmt.Printf("  %s\n", st.Message)
	} else {
		fmt.Printf("  %-16s %-8s %-12s %15s %15s %15s %12s\n",
			"TIPO", "PARC.", "DT. RECEBE", "VAL. PAGA", "VL. CONFIRM.", "VL. MENOR", "DIFERENÇA")
		fmt.Println(strings.Repeat("-", 98))
		for _, l := range st.Lines {
			fmt.Printf("  %-16s %-8s %-12s %15s %15s %15s %12s\n",
				l.TypeLabel, l.Number, l.ReceivedDate, l.Paid, l.Confirmed, l.Usable, l.Delta)
		}
	}

	fmt.Println(strings.Repeat("=", 98))
	fmt.Printf("  Total Valor Pago            : %s\n", st.TotalPaid)
	fmt.Printf("  Total Valor Confirmado      : %s\n", st.TotalConfirmed)
	fmt.Printf("  Valor para Usar na Quitação : %s\n", st.TotalUsable)
	fmt.Println(strings.Repeat("=", 98))
}
