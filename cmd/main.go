package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/puppygraph/puppygraph-go/internal/config"
	"github.com/puppygraph/puppygraph-go/internal/controller"
	"github.com/puppygraph/puppygraph-go/internal/handler"
	"github.com/puppygraph/puppygraph-go/pkg/puppygraph"
)

// parseLogLevel converts a string log level to zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel // default to info
	}
}

func main() {
	var configPath = flag.String("config", "app.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	cfgZap := zap.NewProductionConfig()
	cfgZap.Level.SetLevel(parseLogLevel(cfg.App.LogLevel))
	logger, err := cfgZap.Build()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Connecting to PuppyGraph",
		zap.String("ip", cfg.PuppyGraph.IP),
		zap.String("query_language", cfg.PuppyGraph.QueryLanguage))

	client, err := puppygraph.NewBoltClient(cfg.PuppyGraph.HostConfig(), logger)
	if err != nil {
		logger.Fatal("Failed to create PuppyGraph client", zap.Error(err))
	}
	defer client.Close(context.Background())

	// Fetches and caches the schema; fails fast on bad host or credentials
	store, err := puppygraph.NewStore(context.Background(), cfg.PuppyGraph.QueryLanguage, client, logger)
	if err != nil {
		logger.Fatal("Failed to create graph store", zap.Error(err))
	}

	graphController := controller.NewGraphController(store, logger)
	router := handler.SetupRouter(graphController, cfg, logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}
