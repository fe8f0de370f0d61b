package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App       App
		JWT       JWT
		Stripe    Stripe
		Media     Media
		ClientApp ClientApp
	}

	App struct {
		Env                                string
		Port                               string
		Version                            string
		Address                            string
		EndpointPrefix                     string
		MaxRequests                        int
		ShutdownTimeoutInSeconds           int
		MaxTimeRequestsPerSeconds          int
		RequestBodyLimitInMegabyte         int
		WebhookMaxRequestsPerSecond        int
		WebhookBurst                       int
		LoginSessionExpiredTimeInHours     int
		ForgotPasswordTokenExpTimeInMinute int
		RabbitMQUploadStatusExchange       string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Stripe struct {
		SecretKey            string
		WebhookSecret        string
		BaseUrl              string
		RequestTimeoutInSecs int
	}

	Media struct {
		UploadURLExpiryTimeInMinutes int
		PlaybackURLExpiryTimeInHours int
		VideoMaxUploadSizeInMB       int64
		ThumbnailMaxUploadSizeInMB   int64
	}

	ClientApp struct {
		BaseUrl            string
		CheckoutSuccessURL string
		CheckoutCancelURL  string
	}
)
