// report prints the payoff statement for one sale to the terminal.
//
// Usage:
//
//	go run ./cmd/report -empresa 999 -obra 70100 -venda 12345
package main

import (
	"context"
	"flag"
	"log"

	"quitacao-report/internal/adapters/cli"
	"quitacao-report/internal/app"
	"quitacao-report/internal/core"
	"quitacao-report/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	companyID := flag.Int("empresa", 0, "código da empresa (999 ou 6)")
	siteCode := flag.String("obra", "", "código da obra (70100 ou 70400)")
	saleNumber := flag.Int("venda", 0, "número da venda")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	svc := app.NewAppService(core.NewSaleService(pool), core.NewPayoffService(pool))

	if err := cli.Run(ctx, svc, *companyID, *siteCode, *saleNumber); err != nil {
		log.Fatalf("report: %v", err)
	}
}
