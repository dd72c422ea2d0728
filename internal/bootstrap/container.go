package bootstrap

import (
	"context"
	"log"
	"time"

	"buildhive-be/internal/config"
	"buildhive-be/internal/controller"
	"buildhive-be/internal/pkg/logger"
	"buildhive-be/internal/pkg/mailer"
	"buildhive-be/internal/pkg/throttle"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/internal/service"
	"buildhive-be/pkg/llm/factory"
	"buildhive-be/pkg/payment"
	"buildhive-be/pkg/review"
	"buildhive-be/pkg/uploader"

	pktNats "buildhive-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ipThrottleLimit  = 20
	ipThrottleWindow = time.Hour
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	UserController       controller.IUserController
	CodeReviewController controller.ICodeReviewController
	PaymentController    controller.IPaymentController
	ProjectController    controller.IProjectController
	InterestController   controller.IInterestController

	// Background Services (Exposed for main.go to run)
	NotificationService service.INotificationService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderEmail,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	// NATS
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis backed throttle, in-memory when Redis is absent
	var throttleStore throttle.Store
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory throttle", err)
			throttleStore = throttle.NewMemoryStore()
		} else {
			throttleStore = throttle.NewRedisStore(rdb)
		}
	} else {
		throttleStore = throttle.NewMemoryStore()
	}
	ipLimiter := throttle.NewIPLimiter(throttleStore, ipThrottleLimit, ipThrottleWindow, "review_throttle")

	// LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	analyzer := review.NewAnalyzer(llmProvider)

	// Payment gateway
	gateway := payment.NewRazorpayGateway(cfg.Keys.RazorpayKeyId, cfg.Keys.RazorpayKeySecret)

	// Image uploads
	var up uploader.Uploader
	if cfg.Keys.CloudinaryURL != "" {
		up, err = uploader.NewCloudinaryUploader(cfg.Keys.CloudinaryURL)
		if err != nil {
			log.Printf("[WARN] Failed to init Cloudinary: %v. Uploads disabled", err)
			up = uploader.NoopUploader{}
		}
	} else {
		up = uploader.NoopUploader{}
	}

	// 3. Services
	notificationService := service.NewNotificationService(emailService, sysLogger)
	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, up)
	codeReviewService := service.NewCodeReviewService(uowFactory, analyzer, natsPub, sysLogger)
	paymentService := service.NewPaymentService(
		uowFactory,
		gateway,
		cfg.Keys.RazorpayKeyId,
		cfg.Keys.RazorpayKeySecret,
		cfg.Keys.RazorpayWebhookSecret,
		natsPub,
		sysLogger,
	)
	projectService := service.NewProjectService(uowFactory, up)
	interestService := service.NewInterestService(uowFactory, notificationService, natsPub)

	// 4. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		UserController:       controller.NewUserController(userService),
		CodeReviewController: controller.NewCodeReviewController(codeReviewService, ipLimiter),
		PaymentController:    controller.NewPaymentController(paymentService),
		ProjectController:    controller.NewProjectController(projectService),
		InterestController:   controller.NewInterestController(interestService),
		NotificationService:  notificationService,
	}
}
