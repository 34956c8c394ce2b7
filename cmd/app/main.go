package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/notifier"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	e := echo.New()

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		e.Logger.Fatal(err)
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		e.Logger.Fatal(err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	if err := postgres.Migrate(ctx, configs.DSN()); err != nil {
		return err
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	clock := kernel.SystemClock{}

	sender, closeSender, err := newNotifier(configs, logger, clock)
	if err != nil {
		return err
	}
	defer closeSender()

	app, err := cmd.NewCompositionRoot(configs, gormDB, postgres.NewGormUnitOfWorkFactory(gormDB), sender, clock, logger)
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func newNotifier(configs cmd.Config, logger *slog.Logger, clock kernel.Clock) (ports.Notifier, func(), error) {
	if configs.NotifierDriver != cmd.NotifierRabbitMQ {
		return notifier.NewLogNotifier(logger, clock), func() {}, nil
	}

	conn, err := amqp.Dial(configs.RabbitMQURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	publisher, err := notifier.NewRabbitMQNotifier(conn, configs.RabbitMQExchange, clock)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return publisher, func() {
		_ = publisher.Close()
		_ = conn.Close()
	}, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	server, err := app.CreateServer()
	if err != nil {
		return err
	}

	e, err := httpadapter.NewRouter(server, logger)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.INFO)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.InfoContext(shutdownCtx, "shutting down")
	return e.Shutdown(shutdownCtx)
}
