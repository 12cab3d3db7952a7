package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-management/internal/api/http"
	"github.com/spec-kit/ticket-management/internal/api/http/handlers"
	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/events"
	"github.com/spec-kit/ticket-management/internal/notification"
	"github.com/spec-kit/ticket-management/internal/observability"
	"github.com/spec-kit/ticket-management/internal/persistence"
	"github.com/spec-kit/ticket-management/internal/repository"
	"github.com/spec-kit/ticket-management/internal/service"
	"github.com/spec-kit/ticket-management/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var (
		userRepo   repository.UserRepository
		ticketRepo repository.TicketRepository
	)
	if pg.Enabled() {
		pool := pg.PoolHandle()
		userRepo = repository.NewUserRepository(pool)
		ticketRepo = repository.NewTicketRepository(pool)
	} else {
		logger.Warn("using in-memory user directory and ticket store")
		userRepo = repository.NewInMemoryUserDirectory("")
		ticketRepo = repository.NewInMemoryTicketStore()
	}
	if err := seedDirectory(ctx, userRepo, cfg.Directory); err != nil {
		logger.Fatal("failed to seed user directory", zap.Error(err))
	}
	users := repository.NewCachedUserDirectory(userRepo, redis.Handle(), cfg.Redis.UserCacheTTL(), logger)

	channels, err := notification.ChannelsFromConfig(cfg.Notification, logger)
	if err != nil {
		logger.Fatal("failed to configure notification channels", zap.Error(err))
	}
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.Name())
	}
	logger.Info("administrator alert channels", zap.Strings("channels", names))

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, channels...)
	worker.StartNotificationWorker(notificationService)

	ticketService, err := service.NewTicketService(service.TicketDependencies{
		Users:         users,
		Tickets:       ticketRepo,
		Notifier:      notificationService,
		Logger:        logger,
		EscalationAge: cfg.Escalation.Age(),
	})
	if err != nil {
		logger.Fatal("failed to build ticket service", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Tickets: handlers.NewTicketsHandler(ticketService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func seedDirectory(ctx context.Context, users repository.UserRepository, cfg config.DirectoryConfig) error {
	for _, name := range cfg.SeedUsers {
		if err := users.Upsert(ctx, domain.User{Username: name}); err != nil {
			return err
		}
	}
	if cfg.AccountManager == "" {
		return nil
	}
	return users.Upsert(ctx, domain.User{Username: cfg.AccountManager, AccountManager: true})
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
