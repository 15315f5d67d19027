// verify-db checks connectivity to the sales store and prints row counts
// for the relations the report reads. Run it after changing DATABASE_URL.
package main

import (
	"context"
	"log"
	"time"

	"quitacao-report/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()
	log.Println("[CONNECT] success")

	tables := []string{"vendas", "vendasrecebidas", "recebidas", "pessoas", "obras", "empresas"}
	for _, table := range tables {
		var count int64
		if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
			log.Fatalf("[COUNT] %s: %v", table, err)
		}
		log.Printf("[COUNT] %-16s %d rows", table, count)
	}

	log.Println("[DONE] store looks reachable and populated.")
}
