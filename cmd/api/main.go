package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"chainmart/internal/adapter/api"
	"chainmart/internal/adapter/api/handler"
	"chainmart/internal/adapter/api/router"
	"chainmart/internal/adapter/repository"
	"chainmart/internal/usecase"
	"chainmart/pkg/config"
	"chainmart/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var opts []option.ClientOption

	// Credentials come from the environment in production and from a
	// key file in local development. With neither set the client
	// falls back to application default credentials.
	if credentialsJSON := os.Getenv("GCLOUD_CREDENTIALS_JSON"); credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); os.IsNotExist(err) {
			log.Fatalf("Credentials file does not exist: %s", cfg.CredentialsFile)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GCloudProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	marketRepo := repository.NewFirestoreMarketRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	marketReviewRepo := repository.NewFirestoreMarketReviewRepository(firestoreClient)
	productReviewRepo := repository.NewFirestoreProductReviewRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)

	marketUseCase := usecase.NewMarketUseCase(marketRepo, productRepo, marketReviewRepo, productReviewRepo, cartRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, marketRepo, productReviewRepo, cartRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo, marketRepo, productRepo)
	marketReviewUseCase := usecase.NewMarketReviewUseCase(marketReviewRepo, marketRepo, itemRepo)
	productReviewUseCase := usecase.NewProductReviewUseCase(productReviewRepo, marketRepo, productRepo, itemRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, marketRepo, productRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo)

	handler.Setup(
		marketUseCase,
		productUseCase,
		itemUseCase,
		marketReviewUseCase,
		productReviewUseCase,
		cartUseCase,
		reportUseCase,
	)
	handler.SetupHealthHandler(firestoreClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	logger.Info("starting server",
		zap.String("port", cfg.ServerPort),
		zap.String("environment", cfg.Environment),
	)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
