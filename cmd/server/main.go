package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "quitacao-report/internal/adapters/web"
	"quitacao-report/internal/app"
	"quitacao-report/internal/core"
	"quitacao-report/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	saleService := core.NewSaleService(pool)
	payoffService := core.NewPayoffService(pool)
	svc := app.NewAppService(saleService, payoffService)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
