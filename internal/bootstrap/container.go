package bootstrap

import (
	"net/http"

	"vg-ai-be/internal/config"
	"vg-ai-be/internal/controller"
	"vg-ai-be/internal/pkg/logger"
	"vg-ai-be/internal/repository/implementation"
	"vg-ai-be/internal/service"
	"vg-ai-be/pkg/genai"
	"vg-ai-be/pkg/imagegen"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PromptController controller.IPromptController
	ImageController  controller.IImageController
	TestController   controller.ITestController

	// Background Services (Exposed for main.go to run)
	AuditService service.IAuditService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Upstream Clients
	// nil lets each client pick its own default timeout.
	var httpClient *http.Client

	textModel := genai.NewClient(genai.Config{
		BaseURL: cfg.GoogleAi.BaseURL,
		Model:   cfg.GoogleAi.Model,
		APIKey:  cfg.GoogleAi.APIKey,
	}, httpClient)

	imageModel := imagegen.NewClient(imagegen.Config{
		URL:          cfg.ImageApi.URL,
		RapidAPIHost: cfg.ImageApi.RapidAPIHost,
		RapidAPIKey:  cfg.ImageApi.RapidAPIKey,
	}, httpClient)

	// 4. Repositories
	turnRepo := implementation.NewPromptTurnRepository(db)
	imageRepo := implementation.NewGeneratedImageRepository(db)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Events.AuditTopicName)
	auditService := service.NewAuditService(pubSub, cfg.Events.AuditTopicName, sysLogger)

	promptService := service.NewPromptService(turnRepo, textModel, publisherService, sysLogger)
	imageService := service.NewImageService(imageRepo, imageModel, publisherService, sysLogger)

	// 6. Controllers
	return &Container{
		PromptController: controller.NewPromptController(promptService),
		ImageController:  controller.NewImageController(imageService),
		TestController:   controller.NewTestController(),

		AuditService: auditService,
		Logger:       sysLogger,
	}
}
