package config

import (
	"learnhub-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "learnhub"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "learnhub-media"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                utils.GetEnvString("APP_ENV", "development"),
			Port:                               utils.GetEnvString("APP_PORT", ":8080"),
			Version:                            utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                            utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:                     utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                        utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:          utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte:         utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			WebhookMaxRequestsPerSecond:        utils.GetEnvInt("APP_WEBHOOK_MAX_REQUESTS_PER_SECOND", 20),
			WebhookBurst:                       utils.GetEnvInt("APP_WEBHOOK_BURST", 40),
			LoginSessionExpiredTimeInHours:     utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			ForgotPasswordTokenExpTimeInMinute: utils.GetEnvInt("APP_FORGOT_PASSWORD_TOKEN_EXP_TIME_IN_MINUTE", 15),
			RabbitMQUploadStatusExchange:       utils.GetEnvString("APP_RABBITMQ_UPLOAD_STATUS_EXCHANGE", "upload.status"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Stripe: Stripe{
			SecretKey:            utils.GetEnvString("STRIPE_SECRET_KEY", ""),
			WebhookSecret:        utils.GetEnvString("STRIPE_WEBHOOK_SECRET", ""),
			BaseUrl:              utils.GetEnvString("STRIPE_BASE_URL", "https://api.stripe.com"),
			RequestTimeoutInSecs: utils.GetEnvInt("STRIPE_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		Media: Media{
			UploadURLExpiryTimeInMinutes: utils.GetEnvInt("MEDIA_UPLOAD_URL_EXPIRY_TIME_IN_MINUTES", 30),
			PlaybackURLExpiryTimeInHours: utils.GetEnvInt("MEDIA_PLAYBACK_URL_EXPIRY_TIME_IN_HOURS", 6),
			VideoMaxUploadSizeInMB:       utils.GetEnvInt64("MEDIA_VIDEO_MAX_UPLOAD_SIZE_IN_MB", 512),
			ThumbnailMaxUploadSizeInMB:   utils.GetEnvInt64("MEDIA_THUMBNAIL_MAX_UPLOAD_SIZE_IN_MB", 2),
		},
		ClientApp: ClientApp{
			BaseUrl:            utils.GetEnvString("CLIENT_APP_BASE_URL", "http://localhost:3000"),
			CheckoutSuccessURL: utils.GetEnvString("CLIENT_APP_CHECKOUT_SUCCESS_URL", "http://localhost:3000/payment-success"),
			CheckoutCancelURL:  utils.GetEnvString("CLIENT_APP_CHECKOUT_CANCEL_URL", "http://localhost:3000/payment-cancel"),
		},
	}
}
