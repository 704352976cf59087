package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"corruptx/internal/adapter/api"
	"corruptx/internal/adapter/api/handler"
	apimiddleware "corruptx/internal/adapter/api/middleware"
	"corruptx/internal/adapter/api/router"
	"corruptx/internal/adapter/repository"
	"corruptx/internal/infrastructure/firebase"
	"corruptx/internal/infrastructure/ratelimit"
	"corruptx/internal/infrastructure/storage"
	"corruptx/internal/infrastructure/websocket"
	"corruptx/internal/usecase"
	"corruptx/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Service account JSON from the environment in production, a key file
	// for local development.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	campaignRepo := repository.NewFirestoreCampaignRepository(firestoreClient)
	campaignRequestRepo := repository.NewFirestoreCampaignRequestRepository(firestoreClient)
	reporterRepo := repository.NewFirestoreReporterRepository(firestoreClient)
	assignmentRepo := repository.NewFirestoreAssignmentRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	authUseCase := usecase.NewAuthUseCase(profileRepo, firebaseAuthClient)
	reportUseCase := usecase.NewReportUseCase(reportRepo, campaignRepo, campaignRequestRepo, storageClient, wsManager)
	heatmapUseCase := usecase.NewHeatmapUseCase(reportRepo, campaignRepo)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, reportRepo)
	campaignRequestUseCase := usecase.NewCampaignRequestUseCase(campaignRequestRepo, campaignRepo, reportRepo, storageClient)
	reporterUseCase := usecase.NewReporterUseCase(reporterRepo, assignmentRepo, profileRepo)
	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo, reporterRepo, reportRepo, storageClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)

	handler.Setup(
		authUseCase,
		reportUseCase,
		heatmapUseCase,
		campaignUseCase,
		campaignRequestUseCase,
		reporterUseCase,
		assignmentUseCase,
		profileUseCase,
	)
	handler.SetupHealthHandler(storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(profileRepo)
	reporterMiddleware := apimiddleware.NewReporterMiddleware(reporterRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(rateLimiter)

	wsHandler := handler.NewWebSocketHandler(wsManager, authClient)

	router.Setup(e, authMiddleware, adminMiddleware, reporterMiddleware, rateLimitMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
