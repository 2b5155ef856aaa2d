package bootstrap

import (
	"context"
	"log"

	"notekeeper-be/internal/config"
	"notekeeper-be/internal/controller"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/mailer"
	"notekeeper-be/internal/pkg/serverutils"
	"notekeeper-be/internal/repository/contract"
	"notekeeper-be/internal/repository/memory"
	"notekeeper-be/internal/repository/redisstore"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/service"

	pktNats "notekeeper-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	NoteController         controller.INoteController
	LabelController        controller.ILabelController
	CollaboratorController controller.ICollaboratorController

	// Shared middleware
	AuthMiddleware fiber.Handler

	// Background services (exposed for main.go to run)
	MailConsumerService service.IMailConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Mail queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Token revocation store
	var revocations contract.RevocationRepository
	if cfg.App.RevocationStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		revocations = redisstore.NewRevocationRepository(rdb)
		log.Printf("[INFO] Using revocation store: REDIS")
	} else {
		revocations = memory.NewRevocationRepository()
		log.Printf("[INFO] Using revocation store: MEMORY")
	}

	// 4. NATS activity events
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.MailTopic, pubSub)
	mailConsumerService := service.NewMailConsumerService(
		pubSub,
		cfg.App.MailTopic,
		emailService,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, cfg.App.JWTSecret, revocations, publisherService, natsPub)
	userService := service.NewUserService(uowFactory)
	noteService := service.NewNoteService(uowFactory, natsPub)
	noteQueryService := service.NewNoteQueryService(uowFactory, cfg.App.PageSize)
	labelService := service.NewLabelService(uowFactory)
	collaboratorService := service.NewCollaboratorService(uowFactory, publisherService, natsPub)

	// 6. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		NoteController:         controller.NewNoteController(noteService, noteQueryService),
		LabelController:        controller.NewLabelController(labelService),
		CollaboratorController: controller.NewCollaboratorController(collaboratorService),

		AuthMiddleware: serverutils.NewJwtMiddleware(cfg.App.JWTSecret, revocations),

		MailConsumerService: mailConsumerService,

		Logger: sysLogger,
	}
}
