package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/username/finsight/backend/src/config"
	"github.com/username/finsight/backend/src/handlers"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(config.Cfg.AllowedOrigins))
	for _, origin := range config.Cfg.AllowedOrigins {
		allowed[origin] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("FinSight backend server starting...")

	snapshotCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)

	var extractionService services.Extractor
	var assistantService services.AssistantService
	if config.Cfg.AnthropicAPIKey != "" {
		extractionService = services.NewExtractionService(config.Cfg.AnthropicAPIKey, config.Cfg.ExtractionModel)
	} else {
		logger.L.Warn("ANTHROPIC_API_KEY not set; statement imports will use the sample dataset")
	}

	analysisService := services.NewAnalysisService(extractionService, snapshotCache, config.Cfg.SessionTTL)

	if config.Cfg.AnthropicAPIKey != "" {
		assistantService = services.NewAssistantService(
			config.Cfg.AnthropicAPIKey,
			config.Cfg.AssistantModel,
			config.Cfg.AssistantMaxTokens,
			analysisService,
		)
	}

	sessionHandler := handlers.NewSessionHandler(analysisService)
	uploadHandler := handlers.NewUploadHandler(analysisService)
	analyticsHandler := handlers.NewAnalyticsHandler(analysisService)
	chatHandler := handlers.NewChatHandler(assistantService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "FinSight Backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", sessionHandler.HandleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Put("/profile", sessionHandler.HandleUpdateProfile)
			r.Post("/statements", uploadHandler.HandleUploadStatements)
			r.Get("/analytics", analyticsHandler.HandleGetAnalytics)
			r.Get("/months", analyticsHandler.HandleGetMonths)
			r.Post("/chat", chatHandler.HandleChat)
		})
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // extraction calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
