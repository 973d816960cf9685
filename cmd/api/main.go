package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"procintel/pipeline/internal/handlers"
	"procintel/pipeline/internal/repositories"
)

func init() {
	// .env is optional for local runs
	_ = godotenv.Load()
}

func main() {
	// Database connection
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	// Initialize repository and handlers
	contractRepo := repositories.NewContractRepository(pool)
	contractsHandler := handlers.NewContractsHandler(contractRepo)

	// Setup routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// Contract endpoints
	// Note: More specific routes must be registered before less specific ones
	mux.HandleFunc("/contracts/summary", contractsHandler.HandleSummary)
	mux.HandleFunc("/contracts", contractsHandler.HandleSearch)
	// Handle individual contract by contractId (must be last to catch /contracts/:id)
	mux.HandleFunc("/contracts/", func(w http.ResponseWriter, r *http.Request) {
		contractsHandler.HandleGetContract(w, r)
	})

	// CORS middleware for development
	handler := corsMiddleware(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":4000"
	}

	log.Printf("Contract API listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

// corsMiddleware adds CORS headers for development
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
