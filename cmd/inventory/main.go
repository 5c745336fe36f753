// Stub inventory service for running the order service locally: serves
// GET /api/inventory?skuCode=... from a stock table seeded via INVENTORY_STOCK
// (e.g. "iphone_15=30,pixel_8=12").
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type stockEntry struct {
	SkuCode string `json:"skuCode"`
	InStock int    `json:"inStock"`
}

type stockTable struct {
	mu sync.RWMutex
	m  map[string]int
}

func (t *stockTable) lookup(skus []string) []stockEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]stockEntry, 0, len(skus))
	for _, sku := range skus {
		n, ok := t.m[sku]
		if !ok {
			continue // absent SKU: report nothing, caller treats as zero
		}
		out = append(out, stockEntry{SkuCode: sku, InStock: n})
	}
	return out
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func parseStock(s string) map[string]int {
	m := map[string]int{}
	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		if n, err := strconv.Atoi(kv[1]); err == nil {
			m[kv[0]] = n
		}
	}
	return m
}

func main() {
	_ = godotenv.Load()

	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().Str("service", "inventory-stub").Logger()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8082"
	}
	table := &stockTable{m: parseStock(os.Getenv("INVENTORY_STOCK"))}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api/inventory", func(w http.ResponseWriter, req *http.Request) {
		skus := req.URL.Query()["skuCode"]
		log.Info().Strs("sku_codes", skus).Msg("stock lookup")
		writeJSON(w, http.StatusOK, table.lookup(skus))
	})

	log.Info().Str("addr", addr).Int("skus", len(table.m)).Msg("inventory stub listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
