//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"proapp/internal/auth"
	"proapp/internal/cache"
	"proapp/internal/article"
	"proapp/internal/category"
	"proapp/internal/common"
	"proapp/internal/config"
	"proapp/internal/dbmongo"
	"proapp/internal/mail"
	"proapp/internal/media"
	"proapp/internal/queue"
	"proapp/internal/user"
)

var storageSet = wire.NewSet(
	ProvideDatabase,
	ProvideMongo,
	ProvideRedis,
	cache.NewCache,
	wire.Bind(new(cache.KeyValue), new(*cache.Cache)),
	cache.NewTokenBlacklist,
	wire.Bind(new(auth.Revoker), new(*cache.TokenBlacklist)),
	wire.Bind(new(common.RevocationChecker), new(*cache.TokenBlacklist)),
	dbmongo.NewFileStorage,
	wire.Bind(new(media.FileStore), new(*dbmongo.FileStorage)),
)

var emailSet = wire.NewSet(
	ProvideProducer,
	wire.Bind(new(queue.Publisher), new(*queue.Producer)),
	queue.NewEmailService,
	wire.Bind(new(common.EmailDispatcher), new(*queue.EmailService)),
)

var domainSet = wire.NewSet(
	common.NewBcryptHasher,
	wire.Bind(new(common.PasswordHasher), new(*common.BcryptHasher)),
	common.NewJWTManager,
	user.NewUserRepository,
	user.NewUserService,
	user.NewHandler,
	ProvideActorLoader,
	auth.NewTokenRepository,
	auth.NewLogCodeSender,
	wire.Bind(new(auth.CodeSender), new(*auth.LogCodeSender)),
	auth.NewAuthService,
	auth.NewHandler,
	category.NewCategoryRepository,
	category.NewCategoryService,
	category.NewHandler,
	article.NewArticleRepository,
	article.NewArticleService,
	article.NewHandler,
	media.NewHandler,
	ProvideScheduler,
)

func InitializeApplication(cfg *config.Config, log *zap.Logger) (*Application, func(), error) {
	wire.Build(
		storageSet,
		emailSet,
		domainSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}

func InitializeMailWorker(cfg *config.Config, log *zap.Logger) (*MailWorker, func(), error) {
	wire.Build(
		ProvideConsumer,
		mail.NewRenderer,
		mail.NewSMTPSender,
		wire.Bind(new(mail.Sender), new(*mail.SMTPSender)),
		ProvideDispatcher,
		wire.Struct(new(MailWorker), "*"),
	)
	return nil, nil, nil
}
