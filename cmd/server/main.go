package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/postal/cards/internal/adapters/handler/http"
	"github.com/postal/cards/internal/adapters/repository/memory"
	"github.com/postal/cards/internal/adapters/repository/postgres"
	"github.com/postal/cards/internal/config"
	"github.com/postal/cards/internal/core/ports"
	"github.com/postal/cards/internal/core/services"
	"github.com/postal/cards/internal/core/validation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var store ports.DocumentStore
	switch cfg.StoreBackend {
	case config.BackendMemory:
		store = memory.NewDocumentStore()
	default:
		db, err := sql.Open("postgres", cfg.DB.ConnString())
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		store = postgres.NewDocumentStore(db)
	}

	tokens := services.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	hasher := services.NewHasher()
	schemas := validation.NewRegistry()

	authService := services.NewAuthService(store, tokens, hasher)
	userService := services.NewUserService(store)
	cardService := services.NewCardService(store)

	handler := http.NewHandler(
		http.NewAuthHandler(authService, schemas),
		http.NewUserHandler(userService, tokens),
		http.NewCardHandler(cardService, schemas),
		tokens,
	)

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Server.Port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
