package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"plotline/internal/auth"
	"plotline/internal/catalog"
	"plotline/internal/config"
	"plotline/internal/handler"
	"plotline/internal/middleware"
	"plotline/internal/repository/postgres"
	postgresOutline "plotline/internal/repository/postgres/outline"
	serviceOutline "plotline/internal/service/outline"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	novelRepo := postgresOutline.NewNovelRepository(repoConfig)
	partRepo := postgresOutline.NewPartRepository(repoConfig)
	chapterRepo := postgresOutline.NewChapterRepository(repoConfig)
	beatRepo := postgresOutline.NewBeatRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Ownership resolver shared by all services
	resolver := serviceOutline.NewResolver(novelRepo, partRepo, chapterRepo, beatRepo)

	// Create services
	novelService := serviceOutline.NewNovelService(novelRepo, resolver, logger)
	partService := serviceOutline.NewPartService(partRepo, resolver, logger)
	chapterService := serviceOutline.NewChapterService(chapterRepo, beatRepo, resolver, txManager, logger)
	beatService := serviceOutline.NewBeatService(beatRepo, resolver, logger)

	// Initialize the outline suggestion catalog
	catalogRegistry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize outline catalog: %v", err)
	}
	logger.Info("outline catalog initialized")

	// Create handlers
	novelHandler := handler.NewNovelHandler(novelService, logger)
	partHandler := handler.NewPartHandler(partService, logger)
	chapterHandler := handler.NewChapterHandler(chapterService, logger)
	beatHandler := handler.NewBeatHandler(beatService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Novel routes
	mux.HandleFunc("GET /api/novels", novelHandler.ListNovels)
	mux.HandleFunc("POST /api/novels", novelHandler.CreateNovel)
	mux.HandleFunc("GET /api/novels/{id}", novelHandler.GetNovel)
	mux.HandleFunc("PATCH /api/novels/{id}", novelHandler.UpdateNovel)

	// Part routes
	mux.HandleFunc("GET /api/novels/{novelID}/parts", partHandler.ListParts)
	mux.HandleFunc("POST /api/novels/{novelID}/parts", partHandler.CreatePart)
	mux.HandleFunc("GET /api/novels/{novelID}/parts/{id}", partHandler.GetPart)
	mux.HandleFunc("PATCH /api/novels/{novelID}/parts/{id}", partHandler.UpdatePart)
	mux.HandleFunc("DELETE /api/novels/{novelID}/parts/{id}", partHandler.DeletePart)

	// Chapter routes
	mux.HandleFunc("GET /api/novels/{novelID}/chapters", chapterHandler.ListChapters)
	mux.HandleFunc("POST /api/novels/{novelID}/chapters", chapterHandler.CreateChapter)
	mux.HandleFunc("GET /api/novels/{novelID}/chapters/{id}", chapterHandler.GetChapter)
	mux.HandleFunc("PATCH /api/novels/{novelID}/chapters/{id}", chapterHandler.UpdateChapter)
	mux.HandleFunc("DELETE /api/novels/{novelID}/chapters/{id}", chapterHandler.DeleteChapter)

	// Beat routes
	mux.HandleFunc("GET /api/novels/{novelID}/beats", beatHandler.ListBeats)
	mux.HandleFunc("POST /api/novels/{novelID}/beats", beatHandler.CreateBeat)
	mux.HandleFunc("GET /api/novels/{novelID}/beats/{id}", beatHandler.GetBeat)
	mux.HandleFunc("PATCH /api/novels/{novelID}/beats/{id}", beatHandler.UpdateBeat)
	mux.HandleFunc("DELETE /api/novels/{novelID}/beats/{id}", beatHandler.DeleteBeat)

	// Catalog routes
	mux.HandleFunc("GET /api/catalog/outline", catalogHandler.GetOutlineCatalog)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.Auth(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
