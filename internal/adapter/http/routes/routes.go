package routes

import (
	"context"
	"log"
	"os"

	_ "vizinhanca-ativa/docs" // swag-generated documentation
	"vizinhanca-ativa/internal/adapter/http/handlers"
	"vizinhanca-ativa/internal/adapter/http/middleware"
	"vizinhanca-ativa/internal/adapter/persistence/repository"
	"vizinhanca-ativa/internal/infrastructure/ai"
	"vizinhanca-ativa/internal/infrastructure/database"
	"vizinhanca-ativa/internal/infrastructure/payments"
	"vizinhanca-ativa/internal/infrastructure/storage"
	"vizinhanca-ativa/internal/usecase"
	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	logger := newLogger()
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}

func getRoutes(logger *zap.Logger) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, logger)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	demandRepo := repository.NewDemandDynamoRepository(ddb)
	campaignRepo := repository.NewCampaignDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	var analyzer interfaces.ISafetyAnalyzer
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		a, err := ai.NewGeminiSafetyAnalyzer(ctx, key, os.Getenv("GEMINI_MODEL"), logger)
		if err != nil {
			logger.Warn("safety analyzer not configured", zap.Error(err))
		} else {
			analyzer = a
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, demands are created without safety analysis")
	}

	var gateway interfaces.IContributionGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn("contribution gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	var images interfaces.IImageStorage
	if bucket := os.Getenv("IMAGES_BUCKET"); bucket != "" {
		awsCfg, err := database.NewAWSConfigFromEnv(ctx)
		if err != nil {
			logger.Warn("image storage not configured", zap.Error(err))
		} else {
			images = storage.NewS3ImageStorage(awsCfg, bucket, os.Getenv("IMAGES_BASE_URL"), logger)
		}
	}

	demandUseCase := usecase.NewDemandUseCase(demandRepo, userRepo, analyzer, logger)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, userRepo, gateway, logger)
	statsUseCase := usecase.NewStatsUseCase(demandRepo, campaignRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	demandHandler := handlers.NewDemandHandler(demandUseCase)
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase, images)
	statsHandler := handlers.NewStatsHandler(statsUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.RequireActor())
	addMarketplaceRoutes(authed, demandHandler, campaignHandler, statsHandler, userHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
