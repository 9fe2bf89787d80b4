package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"gasvision/internal/config"
	"gasvision/internal/handler"
	infraRepo "gasvision/internal/infra/repository"
	"gasvision/internal/logging"
	"gasvision/internal/server"
	"gasvision/internal/session"
	"gasvision/internal/usecase"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New(true).Fatalw("invalid config", "error", err)
	}

	log := logging.New(cfg.IsDev())
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Infow(".env not loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//セッション
	sessions, closeSessions := newSessionStore(cfg, log)
	defer closeSessions()

	//保存先（WRITE_THROUGH=falseならセッションだけ）
	var uc *usecase.OrderUsecase
	if cfg.WriteThrough {
		stores, err := infraRepo.NewStores(cfg)
		if err != nil {
			log.Fatalw("store init failed", "error", err)
		}
		defer func() {
			if err := stores.Close(context.Background()); err != nil {
				log.Warnw("store close failed", "error", err)
			}
		}()
		uc = usecase.NewOrderUsecase(stores.Orders, stores.Customers, &realClock{})
	} else {
		uc = usecase.NewOrderUsecase(nil, nil, &realClock{})
	}

	//Handler生成
	h := handler.NewCustomerHandler(uc, sessions, log)

	e := server.New(log)
	server.RegisterCustomerRoutes(e, h, sessions, cfg.SessionTTL, log)

	//Server起動
	if err := server.Start(ctx, e, server.Addr(cfg.Port), log); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

func newSessionStore(cfg config.Config, log *zap.SugaredLogger) (session.Store, func()) {
	if cfg.SessionBackend != config.SessionRedis {
		return session.NewMemoryStore(cfg.SessionTTL), func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return session.NewRedisStore(rdb, cfg.SessionTTL), func() {
		if err := rdb.Close(); err != nil {
			log.Warnw("redis close failed", "error", err)
		}
	}
}
