package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food_monitor/internal/config"
	"food_monitor/internal/handlers"
	"food_monitor/internal/logger"
	"food_monitor/internal/mqtt"
	"food_monitor/internal/repository"
	"food_monitor/internal/repository/db"
	"food_monitor/internal/server"
	"food_monitor/internal/service"

	_ "food_monitor/docs"
)

// awsConfigTimeout bounds loading the shared AWS config and credentials.
const awsConfigTimeout = 10 * time.Second

// @title       Food Monitor API
// @version     1.0
// @description Traffic-light signal for refrigerated food storage.
// @BasePath    /
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open durable medium
	store, closer, err := openSignalStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open signal store", "driver", cfg.Store.Driver, "err", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			log.Errorw("failed to close signal store", "err", cerr)
		}
	}()

	// wire dependencies
	services := service.NewService(service.Deps{
		Store:     store,
		Generator: service.NewOpenAIGenerator(cfg.LLM.APIKey, cfg.LLM.BaseURL),
		Model: service.ModelConfig{
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
		LLMTimeout:      cfg.LLM.Timeout,
		ReadingCapacity: cfg.Sensors.Capacity,
		Log:             log,
	})
	if cfg.LLM.APIKey == "" {
		log.Infow("llm_disabled", "reason", "no api key; analysis endpoints use fallbacks")
	}
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Evaluator.Interval > 0 {
		go services.Run(ctx, cfg.Evaluator.Interval)
	}

	if cfg.MQTT.Enabled {
		sub := mqtt.NewSubscriber(mqtt.Config{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			Topic:    cfg.MQTT.Topic,
			QoS:      cfg.MQTT.QoS,
		}, services.Readings, log)
		// Sensor ingestion over HTTP keeps working without the broker.
		if err := sub.Start(); err != nil {
			log.Errorw("mqtt_start_failed", "broker", cfg.MQTT.Broker, "err", err)
		} else {
			defer sub.Stop()
		}
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, cfg, log)
}

// openSignalStore builds the cache-fronted store for the configured driver.
func openSignalStore(cfg *config.Config, log *logger.Logger) (repository.SignalStore, io.Closer, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warnw("signal_store_memory_only", "note", "state is lost on restart")
		return repository.NewMemorySignalStore(log), nopCloser{}, nil

	case config.StoreDynamoDB:
		ctx, cancel := context.WithTimeout(context.Background(), awsConfigTimeout)
		defer cancel()
		client, err := db.NewDynamoDBClient(ctx, cfg.DynamoDB.Region)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewSignalDynamo(client, cfg.DynamoDB.Table, cfg.DynamoDB.Key)
		return repository.NewSignalStore(repo, log), nopCloser{}, nil

	case config.StoreSQLite:
		sqlDB, err := db.InitDB(cfg.DB.Path)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSignalStore(repository.NewSignalSQLite(sqlDB), log), sqlDB, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", cfg.Port, "store", cfg.Store.Driver)
		err := srv.Run(cfg.Port, handler.InitRoutes(), server.Timeouts{
			ReadHeader: cfg.Server.ReadHeaderTimeout,
			Write:      cfg.Server.WriteTimeout,
			Idle:       cfg.Server.IdleTimeout,
		})
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
