package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prismworks/backend/internal/config"
	"github.com/prismworks/backend/internal/events"
	"github.com/prismworks/backend/internal/handler"
	"github.com/prismworks/backend/internal/logging"
	"github.com/prismworks/backend/internal/repository"
	"github.com/prismworks/backend/internal/service"
	"github.com/prismworks/backend/pkg/auth"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	hub := events.NewHub()

	contactRepo := repository.NewPgContactRepository(pool)
	requestRepo := repository.NewPgRequestRepository(pool)
	quoteRepo := repository.NewPgQuoteRepository(pool)
	leadRepo := repository.NewPgLeadRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)

	contactService := service.NewContactService(contactRepo, hub)
	requestService := service.NewRequestService(requestRepo, hub)
	quoteService := service.NewQuoteService(quoteRepo, hub)
	leadService := service.NewLeadService(leadRepo, hub)
	projectService := service.NewProjectService(projectRepo, hub)
	inboxService := service.NewInboxService(contactRepo, requestRepo, quoteRepo, leadRepo)
	clientService := service.NewClientService(projectRepo, leadRepo, requestRepo, contactRepo)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	requestHandler := handler.NewRequestHandler(requestService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	leadHandler := handler.NewLeadHandler(leadService)
	projectHandler := handler.NewProjectHandler(projectService)
	inboxHandler := handler.NewInboxHandler(inboxService)
	clientHandler := handler.NewClientHandler(clientService)
	eventsHandler := handler.NewEventsHandler(hub)

	sessionSecretBytes := auth.SessionSecretBytes(cfg.SessionSecret)
	wrapAuth := func(next http.Handler) http.Handler {
		if cfg.AuthRequired {
			return auth.RequireAuth(sessionSecretBytes)(next)
		}
		return auth.DevAuth(next)
	}

	publicLimiter := handler.NewRateLimiter(cfg.PublicRateLimit)
	wrapPublic := func(next http.Handler) http.Handler {
		return publicLimiter.Middleware(next)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// Public form endpoints (rate-limited)
	mux.Handle("POST /api/contact", wrapPublic(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/requests", wrapPublic(http.HandlerFunc(requestHandler.Submit)))
	mux.Handle("POST /api/quotes", wrapPublic(http.HandlerFunc(quoteHandler.Submit)))

	// Unified inbox and client consolidation
	mux.Handle("GET /api/admin/inbox", wrapAuth(http.HandlerFunc(inboxHandler.List)))
	mux.Handle("GET /api/admin/clients", wrapAuth(http.HandlerFunc(clientHandler.List)))
	mux.Handle("GET /api/admin/events", wrapAuth(http.HandlerFunc(eventsHandler.Stream)))

	// Per-store admin endpoints
	mux.Handle("GET /api/admin/contacts", wrapAuth(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("PATCH /api/admin/contacts/{id}/status", wrapAuth(http.HandlerFunc(contactHandler.UpdateStatus)))
	mux.Handle("GET /api/admin/requests", wrapAuth(http.HandlerFunc(requestHandler.AdminList)))
	mux.Handle("PATCH /api/admin/requests/{id}/status", wrapAuth(http.HandlerFunc(requestHandler.UpdateStatus)))
	mux.Handle("GET /api/admin/quotes", wrapAuth(http.HandlerFunc(quoteHandler.AdminList)))
	mux.Handle("PATCH /api/admin/quotes/{id}/status", wrapAuth(http.HandlerFunc(quoteHandler.UpdateStatus)))

	mux.Handle("GET /api/admin/leads", wrapAuth(http.HandlerFunc(leadHandler.List)))
	mux.Handle("POST /api/admin/leads", wrapAuth(http.HandlerFunc(leadHandler.Create)))
	mux.Handle("PUT /api/admin/leads/{id}", wrapAuth(http.HandlerFunc(leadHandler.Update)))
	mux.Handle("PATCH /api/admin/leads/{id}/status", wrapAuth(http.HandlerFunc(leadHandler.UpdateStatus)))
	mux.Handle("DELETE /api/admin/leads/{id}", wrapAuth(http.HandlerFunc(leadHandler.Delete)))

	mux.Handle("GET /api/admin/projects", wrapAuth(http.HandlerFunc(projectHandler.List)))
	mux.Handle("POST /api/admin/projects", wrapAuth(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("GET /api/admin/projects/{id}", wrapAuth(http.HandlerFunc(projectHandler.Get)))
	mux.Handle("PATCH /api/admin/projects/{id}/status", wrapAuth(http.HandlerFunc(projectHandler.PatchStatus)))

	server := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout: 10 * time.Second,
		// No WriteTimeout: the SSE events endpoint holds its connection open.
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
