package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crmkit/salespipe/internal/infra/database"
	"github.com/crmkit/salespipe/internal/infra/http/handlers"
	"github.com/crmkit/salespipe/internal/infra/http/middleware"
	"github.com/crmkit/salespipe/internal/usecase"
)

func main() {
	godotenv.Load()

	logLevel := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: logLevel})))

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		slog.Error("MONGO_URI is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fail fast: serving requests without a store is pointless.
	client, err := database.Connect(ctx, uri)
	if err != nil {
		slog.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "salespipe"
	}
	db := client.Database(dbName)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		slog.Error("index creation failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	agentRepo := database.NewAgentRepository(db)
	leadRepo := database.NewLeadRepository(db)
	commentRepo := database.NewCommentRepository(db)

	// Use cases
	createAgentUC := usecase.NewCreateAgentUseCase(agentRepo)
	listAgentsUC := usecase.NewListAgentsUseCase(agentRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, agentRepo)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, agentRepo)
	deleteLeadUC := usecase.NewDeleteLeadUseCase(leadRepo)
	listLeadsUC := usecase.NewListLeadsUseCase(leadRepo)
	getLeadUC := usecase.NewGetLeadUseCase(leadRepo, agentRepo)
	createCommentUC := usecase.NewCreateCommentUseCase(commentRepo, leadRepo, agentRepo)
	listCommentsUC := usecase.NewListCommentsUseCase(commentRepo, leadRepo)
	reportUC := usecase.NewReportUseCase(leadRepo)

	// Handlers
	agentHandler := handlers.NewAgentHandler(createAgentUC, listAgentsUC)
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, deleteLeadUC, listLeadsUC, getLeadUC)
	commentHandler := handlers.NewCommentHandler(createCommentUC, listCommentsUC)
	reportHandler := handlers.NewReportHandler(reportUC)
	healthHandler := handlers.NewHealthHandler(client)

	origins := []string{"*"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/agents", agentHandler.Create)
		r.Get("/agents", agentHandler.List)

		r.Post("/leads", leadHandler.Create)
		r.Get("/leads", leadHandler.List)
		r.Get("/leads/{leadId}", leadHandler.Get)
		r.Post("/leads/{leadId}", leadHandler.Update)
		r.Delete("/leads/{leadId}", leadHandler.Delete)

		r.Post("/leads/{leadId}/comments", commentHandler.Create)
		r.Get("/leads/{leadId}/comments", commentHandler.List)

		r.Get("/report/last-week", reportHandler.LastWeek)
		r.Get("/report/pipeline", reportHandler.Pipeline)
		r.Get("/report/status-count", reportHandler.StatusCount)
		r.Get("/report/agent-count", reportHandler.AgentCount)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "port", port, "db", dbName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
