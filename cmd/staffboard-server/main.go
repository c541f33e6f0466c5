package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/staffboard/tui-go/internal/server"
	"github.com/staffboard/tui-go/internal/store"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// SQLite
	dbPath := os.Getenv("STAFFBOARD_DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("failed to resolve home directory", "error", err)
			os.Exit(1)
		}
		dbPath = filepath.Join(home, ".staffboard", "staffboard.db")
	}
	db, err := store.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// A fresh database needs an admin account to log in with.
	adminEmail := os.Getenv("STAFFBOARD_ADMIN_EMAIL")
	adminPassword := os.Getenv("STAFFBOARD_ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if err := server.EnsureAdmin(db, "Admin", adminEmail, adminPassword); err != nil {
			logger.Error("failed to seed admin account", "error", err)
			os.Exit(1)
		}
	}

	router := server.NewRouter(db, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	addr := fmt.Sprintf(":%s", port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("staffboard server starting", "addr", addr, "db", dbPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
