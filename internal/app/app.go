package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"presidia/go_backend/internal/app/config"
	apphttp "presidia/go_backend/internal/app/http"
	db "presidia/go_backend/internal/infra/db/postgres"
	ledgerpg "presidia/go_backend/internal/infra/ledger/postgres"
)

func Run() {
	cfg := config.MustLoad()

	pool, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	store := ledgerpg.NewStore(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = store.EnsureSchema(ctx)
	cancel()
	if err != nil {
		log.Fatalf("ledger schema: %v", err)
	}

	router := apphttp.NewRouter(cfg, store)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
