package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"promptcraft/backend/internal/config"
	"promptcraft/backend/internal/db"
	"promptcraft/backend/internal/handler"
	transport "promptcraft/backend/internal/http"
	"promptcraft/backend/internal/logger"
	"promptcraft/backend/internal/network"
	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/scheduler"
	"promptcraft/backend/internal/service"
	"promptcraft/backend/internal/service/ai"
	"promptcraft/backend/internal/snowflake"
)

const shutdownTimeout = 10 * time.Second

// @title PromptCraft API
// @version 1.0
// @description Prompt library with a folder hierarchy, Trash and AI suggestions.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// A missing .env is normal in production.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		fatal("init snowflake", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		fatal("open database", err)
	}
	defer dbConn.Close()

	folderRepo := repository.NewFolderRepository(dbConn)
	promptRepo := repository.NewPromptRepository(dbConn)
	userRepo := repository.NewUserRepository(dbConn)
	txManager := repository.NewTxManager(dbConn)

	trashService := service.NewTrashService(folderRepo, promptRepo)
	subtreeService := service.NewSubtreeService(folderRepo, promptRepo)
	folderService := service.NewFolderService(txManager, folderRepo, promptRepo, trashService, subtreeService)
	promptService := service.NewPromptService(txManager, promptRepo, folderRepo)
	scoper := service.NewScoper(folderService, trashService, subtreeService)
	authService := service.NewAuthService(txManager, userRepo, trashService, secretKey(cfg), cfg.TokenTTL)
	suggestionService := service.NewSuggestionService(buildProvider(cfg.AI), subtreeService)

	router := transport.NewRouter(
		authService,
		handler.NewAuthHandler(authService, cfg.TokenTTL),
		handler.NewFolderHandler(scoper),
		handler.NewPromptHandler(promptService, scoper),
		handler.NewTagHandler(promptService),
		handler.NewAIHandler(suggestionService),
		handler.NewHealthHandler(dbConn),
		cfg.StaticDir,
	)

	sched := scheduler.New(trashService, cfg.PurgeInterval, cfg.TrashRetention)
	sched.Start()

	go func() {
		logger.Info("server started", "module", "main", "action", "start", "resource", "http", "result", "ok",
			"addr", cfg.Addr,
			"version", config.AppVersion,
			"db_path", cfg.DBPath,
		)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			fatal("start server", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down", "module", "main", "action", "stop", "resource", "http", "result", "ok")

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "module", "main", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}

// buildProvider returns nil when AI is not configured, which makes the
// suggestion endpoints answer 503.
func buildProvider(cfg config.AIConfig) ai.Provider {
	if !cfg.Enabled() {
		logger.Info("ai suggestions disabled", "module", "main", "action", "start", "resource", "ai", "result", "skipped")
		return nil
	}
	httpClient, err := network.NewHTTPClient(cfg.Proxy, cfg.Timeout)
	if err != nil {
		logger.Warn("ai proxy invalid", "module", "main", "action", "start", "resource", "ai", "result", "failed", "error", err)
		return nil
	}
	provider, err := ai.NewProvider(ai.Config{
		Provider:   cfg.Provider,
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		HTTPClient: httpClient,
	})
	if err != nil {
		logger.Warn("ai provider invalid", "module", "main", "action", "start", "resource", "ai", "result", "failed", "provider", cfg.Provider, "error", err)
		return nil
	}
	logger.Info("ai suggestions enabled", "module", "main", "action", "start", "resource", "ai", "result", "ok", "provider", provider.Name(), "qps", cfg.QPS)
	return ai.WithRateLimit(provider, ai.NewRateLimiter(cfg.QPS))
}

// secretKey falls back to a random per-process key, which invalidates tokens
// on restart.
func secretKey(cfg config.Config) string {
	if cfg.SecretKey != "" {
		return cfg.SecretKey
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		fatal("generate secret key", err)
	}
	logger.Warn("PROMPTCRAFT_SECRET_KEY not set, using a random key", "module", "main", "action", "start", "resource", "auth", "result", "failed")
	return hex.EncodeToString(buf)
}

func fatal(action string, err error) {
	logger.Error(action+" failed", "module", "main", "action", "start", "resource", "server", "result", "failed", "error", err)
	os.Exit(1)
}
