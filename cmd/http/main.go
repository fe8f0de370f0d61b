package main

import (
	"context"
	"learnhub-service/internal/app/config"
	"learnhub-service/internal/app/delivery/http/controllers"
	"learnhub-service/internal/app/delivery/http/middlewares"
	"learnhub-service/internal/app/delivery/http/routers"
	"learnhub-service/internal/app/drivers/database"
	"learnhub-service/internal/app/drivers/logger"
	"learnhub-service/internal/app/drivers/messaging"
	driverstorage "learnhub-service/internal/app/drivers/storage"
	"learnhub-service/internal/app/services/core/comments"
	"learnhub-service/internal/app/services/core/courses"
	"learnhub-service/internal/app/services/core/lectures"
	"learnhub-service/internal/app/services/core/media"
	"learnhub-service/internal/app/services/core/progress"
	"learnhub-service/internal/app/services/core/purchases"
	"learnhub-service/internal/app/services/core/session"
	"learnhub-service/internal/app/services/core/users"
	"learnhub-service/internal/app/services/shared/payment_gateway"
	"learnhub-service/internal/app/services/shared/redis"
	"learnhub-service/internal/app/services/shared/storage"
	"learnhub-service/internal/app/services/shared/uploadnotify"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := storage.NewMinioStorage(minioClient)
	stripeService := payment_gateway.NewStripeService(bootstrap.InternalConfig, bootstrap.Logger)
	uploadNotifier, err := uploadnotify.NewRabbitMQNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQUploadStatusExchange)
	if err != nil {
		log.Fatalf("Failed to initialize upload notifier: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Course
	courseMongoRepository := courses.NewCourseMongoRepository(bootstrap.MongoClient, dbName)
	lectureMongoRepository := lectures.NewLectureMongoRepository(bootstrap.MongoClient, dbName)
	courseUsecase := courses.NewCourseUsecase(courseMongoRepository, lectureMongoRepository, redisRepository, bootstrap.Logger)
	courseController := controllers.NewCourseController(bootstrap.Logger, courseUsecase)

	// Lecture
	lectureUsecase := lectures.NewLectureUsecase(lectureMongoRepository, courseMongoRepository)
	lectureController := controllers.NewLectureController(bootstrap.Logger, lectureUsecase)

	// Comment
	commentMongoRepository := comments.NewCommentMongoRepository(bootstrap.MongoClient, dbName)
	commentUsecase := comments.NewCommentUsecase(commentMongoRepository, lectureMongoRepository, userMongoRepository)
	commentController := controllers.NewCommentController(bootstrap.Logger, commentUsecase)

	// Purchase
	purchaseMongoRepository := purchases.NewPurchaseMongoRepository(bootstrap.MongoClient, dbName)
	purchaseUsecase := purchases.NewPurchaseUsecase(
		purchaseMongoRepository,
		courseMongoRepository,
		userMongoRepository,
		stripeService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, purchaseUsecase)

	// Progress
	progressMongoRepository := progress.NewProgressMongoRepository(bootstrap.MongoClient, dbName)
	progressUsecase := progress.NewProgressUsecase(progressMongoRepository, courseMongoRepository, purchaseMongoRepository)
	progressController := controllers.NewProgressController(bootstrap.Logger, progressUsecase)

	// Media
	mediaUsecase := media.NewMediaUsecase(
		minioStorage,
		redisRepository,
		uploadNotifier,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	mediaController := controllers.NewMediaController(bootstrap.Logger, mediaUsecase)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.MongoClient, bootstrap.Redis)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		healthController,
		userController,
		courseController,
		lectureController,
		commentController,
		progressController,
		paymentController,
		mediaController,
	)
}
