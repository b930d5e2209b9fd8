// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/skourtis/kryfo/internal/engine"
	"github.com/skourtis/kryfo/internal/handlers"
	"github.com/skourtis/kryfo/internal/middleware"
	"github.com/skourtis/kryfo/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	st, err := newStore(context.Background())
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	defer st.Close()

	eng := engine.New(st, logger)
	srv := handlers.NewServer(eng, logger)

	mux := http.NewServeMux()
	srv.Routes(mux)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, middleware.RequestLogger(logger)(mux)); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// newStore picks the snapshot backend from STORE: postgres (default), redis,
// or memory for local play without any backing service.
func newStore(ctx context.Context) (store.Store, error) {
	switch os.Getenv("STORE") {
	case "redis":
		return store.NewRedis(ctx)
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.NewPostgres(ctx)
	}
}
