package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/lens-order-service/docs"
	"github.com/SergeyBogomolovv/lens-order-service/internal/app"
	"github.com/SergeyBogomolovv/lens-order-service/internal/config"
	"github.com/SergeyBogomolovv/lens-order-service/internal/events"
	"github.com/SergeyBogomolovv/lens-order-service/internal/handler"
	"github.com/SergeyBogomolovv/lens-order-service/internal/mailer"
	"github.com/SergeyBogomolovv/lens-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/lens-order-service/internal/notify"
	"github.com/SergeyBogomolovv/lens-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/lens-order-service/internal/redis"
	"github.com/SergeyBogomolovv/lens-order-service/internal/repo"
	"github.com/SergeyBogomolovv/lens-order-service/internal/service"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Lens Gallery Order Service API
// @version         1.0
// @description     Заказы, статусы позиций и складской учёт
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")
	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	handler.RegisterMetrics()
	service.RegisterMetrics()
	notify.RegisterMetrics()

	application := app.New(logger, conf, postgres.NewPinger(db))

	var (
		orderCache service.Cache
		registry   service.PresenceRegistry
		pusher     notify.Pusher
	)

	if conf.Redis.URL != "" {
		rdb, err := redis.New(ctx, conf.Redis.URL)
		panicIfErr("failed to connect to redis", err)
		application.SetClosers(rdb)
		logger.Info("redis connected")

		presence := redis.NewPresence(rdb, conf.Redis.PresenceTTL)
		registry = presence
		pusher = redis.NewRealtime(rdb, presence)

		if conf.Cache.Driver == "redis" {
			orderCache = redis.NewCache(logger, rdb, conf.Cache.TTL)
		}
	} else {
		logger.Warn("REDIS_URL is not set, presence and realtime push are disabled")
	}

	if orderCache == nil {
		lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
		application.SetStarters(lru)
		prometheus.MustRegister(lru)
		orderCache = lru
	}

	mail, err := mailer.New(logger, conf.SMTP)
	panicIfErr("failed to create mailer", err)
	dispatcher := notify.NewDispatcher(logger, mail, pusher)

	var deliverer notify.Deliverer
	switch conf.Notify.Mode {
	case "kafka":
		publisher := events.NewPublisher(logger, conf.Kafka)
		application.SetClosers(publisher)
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, conf.Notify.Timeout, dispatcher))
		deliverer = publisher
	default:
		deliverer = dispatcher
	}
	async := notify.NewAsync(logger, deliverer, conf.Notify.Timeout)
	// закрывается первым: публикации, письма и пуши ещё в полёте
	application.SetClosers(async)

	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	orderService := service.NewOrderService(
		logger,
		txManager,
		repo.NewPostgresRepo(db),
		repo.NewInventoryRepo(db),
		async,
		orderCache,
		utils.RetryConfig{
			MaxAttempts:  conf.Tx.RetryAttempts,
			InitialDelay: conf.Tx.RetryDelay,
			ShouldRetry:  postgres.IsRetryable,
		},
	)
	presenceService := service.NewPresenceService(logger, registry)

	httpHandler := handler.NewHTTPHandler(logger, middleware.Auth(logger, conf.Auth.JWTSecret), orderService, presenceService)
	application.SetHTTPHandlers(httpHandler)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(conf config.Config) *slog.Logger {
	if conf.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
