package wire

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"proapp/internal/auth"
	"proapp/internal/cache"
	"proapp/internal/article"
	"proapp/internal/category"
	"proapp/internal/common"
	"proapp/internal/config"
	"proapp/internal/dbmongo"
	"proapp/internal/dbmysql"
	"proapp/internal/mail"
	"proapp/internal/media"
	"proapp/internal/queue"
	"proapp/internal/tasks"
	"proapp/internal/user"
)

// Application is everything cmd/api needs to serve and shut down.
type Application struct {
	Config    *config.Config
	Log       *zap.Logger
	DB        *gorm.DB
	JWT       *common.JWTManager
	Revoked   common.RevocationChecker
	Actors    common.ActorLoader
	Producer  *queue.Producer
	Scheduler *tasks.Scheduler

	Users      *user.Handler
	Auth       *auth.Handler
	Categories *category.Handler
	Articles   *article.Handler
	Media      *media.Handler
}

// MailWorker is the graph of cmd/mail-worker.
type MailWorker struct {
	Config     *config.Config
	Log        *zap.Logger
	Consumer   *queue.Consumer
	Dispatcher *mail.Dispatcher
}

const closeTimeout = 5 * time.Second

func ProvideDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func ProvideMongo(cfg *config.Config, log *zap.Logger) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.Warn("mongodb disconnect", zap.Error(err))
		}
	}
	return client, cleanup, nil
}

// ProvideRedis does not fail on an unreachable server; revocation lookups
// fail open in the auth middleware.
func ProvideRedis(cfg *config.Config, log *zap.Logger) (redis.UniversalClient, func()) {
	client := cache.NewRedisClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, token revocation degraded", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	return client, func() { _ = client.Close() }
}

// ProvideProducer returns a nil producer when kafka is disabled.
func ProvideProducer(cfg *config.Config, log *zap.Logger) (*queue.Producer, func()) {
	p := queue.NewProducer(cfg, log)
	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn("kafka producer close", zap.Error(err))
		}
	}
}

func ProvideActorLoader(svc user.UserService) common.ActorLoader {
	return svc
}

// ProvideScheduler registers the cron tasks. It does not start them.
func ProvideScheduler(cfg *config.Config, users user.UserRepository, authSvc auth.AuthService, log *zap.Logger) (*tasks.Scheduler, error) {
	s := tasks.NewScheduler(log)
	if !cfg.Scheduler.Enabled {
		return s, nil
	}
	spec := cfg.Scheduler.RemindUnverifiedSpec
	if spec == "" {
		spec = tasks.RemindUnverifiedSpec
	}
	if _, err := s.Add(spec, tasks.NewRemindUnverified(users, authSvc, log)); err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}
	return s, nil
}

func ProvideConsumer(cfg *config.Config, log *zap.Logger) (*queue.Consumer, func()) {
	c := queue.NewConsumer(cfg, log)
	return c, func() {
		if err := c.Close(); err != nil {
			log.Warn("kafka consumer close", zap.Error(err))
		}
	}
}

func ProvideDispatcher(cfg *config.Config, renderer *mail.Renderer, sender mail.Sender, log *zap.Logger) *mail.Dispatcher {
	return mail.NewDispatcher(renderer, sender, cfg.Email.Workers, log)
}
