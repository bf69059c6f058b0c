package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"contentiq/ai"
	"contentiq/api"
	"contentiq/cache"
	"contentiq/config"
	"contentiq/extract"
	"contentiq/fetch"
	"contentiq/logging"
	"contentiq/pipeline"
	"contentiq/urlcheck"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	var store cache.Store
	if redisStore, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB); err != nil {
		logger.Warn("redis unavailable, falling back to in-process cache", "addr", cfg.RedisAddr, "error", err)
		store = cache.NewMemory(cfg.MemoryCacheSize)
	} else {
		// Write-through fallback keeps repeat requests cached if Redis
		// drops mid-run.
		store = cache.NewTiered(redisStore, cache.NewMemory(cfg.MemoryCacheSize))
	}
	responseCache := cache.New(store, logger)

	var oracle ai.Oracle
	if cfg.CohereAPIKey != "" {
		oracle = ai.NewCohere(cfg.CohereAPIKey, cfg.CohereModel, cfg.AITimeout, cfg.MaxContentChars)
		logger.Info("AI provider configured", "model", cfg.CohereModel)
	} else {
		logger.Warn("COHERE_API_KEY not set; summarize and sentiment are disabled")
	}

	validator := urlcheck.New(cfg.MaxURLLength, cfg.BlockedURLPatterns)
	fetcher := fetch.NewClient(validator, cfg.FetchTimeout, cfg.MaxBodyBytes, cfg.MaxRedirects)
	extractor := extract.New(cfg.MaxContentChars)
	orch := pipeline.New(fetcher, extractor, oracle, responseCache, cfg, logger)

	r := api.NewRouter(orch, responseCache, cfg.Version, logger)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "cache_backend", responseCache.Backend())
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
