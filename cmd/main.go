package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"temperature_converter/internal/config"
	"temperature_converter/internal/handlers"
	"temperature_converter/internal/logger"
	"temperature_converter/internal/repository"
	"temperature_converter/internal/repository/db"
	"temperature_converter/internal/server"
	"temperature_converter/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Temperature Converter API
// @version      1.0
// @description  Converts temperatures between Celsius, Fahrenheit and Kelvin and keeps a history of conversions.
// @BasePath     /
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open the history store
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	if conn != nil {
		defer func() {
			if cerr := conn.Close(); cerr != nil {
				log.Errorw("failed to close sqlite", "err", cerr)
			}
		}()
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithPingPeriod(cfg.WS.PingPeriod),
		handlers.WithAllowOrigins(cfg.CORS.AllowOrigins),
	)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openDB returns nil for the memory backend.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	if cfg.History.Backend != repository.BackendSQLite {
		log.Infow("history backend", "backend", repository.BackendMemory)
		return nil, nil
	}
	log.Infow("history backend", "backend", repository.BackendSQLite, "path", cfg.DB.Path)
	return db.InitDB(cfg.DB.Path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
