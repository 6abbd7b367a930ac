package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gflow-server/internal/config"
	"gflow-server/internal/delivery/rest"
	"gflow-server/internal/domain/entities"
	"gflow-server/internal/infrastructure/logger"
	"gflow-server/internal/infrastructure/mongodb"
	"gflow-server/internal/infrastructure/nats"
	"gflow-server/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return New(cfg).Serve()
}

func (a *App) Serve() error {
	a.logger.Info("Starting gflow-server")
	defer a.logger.Sync()

	store, err := a.initMongoDB()
	if err != nil {
		return err
	}
	defer store.Close()

	publisher := a.initNATS()
	defer publisher.Close()

	productUseCase := usecase.NewProductUseCase(store.Products())
	userUseCase := usecase.NewUserUseCase(store.Users())
	orderUseCase := usecase.NewOrderUseCase(store.Orders(), publisher)

	handler := rest.NewHandler(productUseCase, userUseCase, orderUseCase, store.Health, a.logger)
	verifier := rest.NewJWTVerifier(a.cfg.Auth.JWTSecret)
	router := rest.NewRouter(handler, verifier, store.Users(), a.logger)

	server := &http.Server{
		Addr:    ":" + a.cfg.HTTP.Port,
		Handler: router,
	}

	return a.runServerWithGracefulShutdown(server)
}

func (a *App) initMongoDB() (*mongodb.Store, error) {
	a.logger.Info("Connecting to MongoDB", "uri", a.cfg.Mongo.URI, "db", a.cfg.Mongo.DB)

	store, err := mongodb.NewStore(a.cfg.Mongo.URI, a.cfg.Mongo.DB, a.logger)
	if err != nil {
		a.logger.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	a.logger.Info("Connected to MongoDB successfully")
	return store, nil
}

func (a *App) initNATS() usecase.EventPublisher {
	if a.cfg.NATS.URL == "" {
		a.logger.Info("NATS URL not set, event publishing disabled")
		return &noopEventPublisher{}
	}

	publisher, err := connectToNATSWithRetry(a.cfg.NATS.URL, a.logger, 3, 2*time.Second)
	if err != nil {
		a.logger.Warn("Failed to connect to NATS, continuing without event publishing",
			"error", err,
			"url", a.cfg.NATS.URL)
		return &noopEventPublisher{}
	}

	a.logger.Info("Connected to NATS successfully")
	return publisher
}

func (a *App) runServerWithGracefulShutdown(server *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server", "port", a.cfg.HTTP.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		a.logger.Info("Received shutdown signal, starting graceful shutdown", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			a.logger.Warn("Graceful shutdown timeout, forcing stop", "error", err)
			return server.Close()
		}

		a.logger.Info("Graceful shutdown completed")
		return nil
	}
}

func connectToNATSWithRetry(url string, logger *logger.Logger, maxRetries int, delay time.Duration) (usecase.EventPublisher, error) {
	for i := 0; i < maxRetries; i++ {
		publisher, err := nats.NewNatsPublisher(url, logger)
		if err == nil {
			return publisher, nil
		}

		logger.Warn("Failed to connect to NATS, retrying...",
			"attempt", i+1,
			"max_retries", maxRetries,
			"error", err)

		if i < maxRetries-1 {
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to NATS after %d attempts", maxRetries)
}

type noopEventPublisher struct{}

func (n *noopEventPublisher) PublishOrderCreated(ctx context.Context, order *entities.Order) error {
	return nil
}

func (n *noopEventPublisher) PublishOrderStatusChanged(ctx context.Context, orderID, status string) error {
	return nil
}

func (n *noopEventPublisher) Close() {
}
