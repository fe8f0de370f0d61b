package controllers

import (
	"context"
	"learnhub-service/internal/pkg/constvars"
	"learnhub-service/internal/pkg/dto/responses"
	"learnhub-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type HealthController struct {
	Log         *zap.Logger
	MongoClient *mongo.Client
	RedisClient *redis.Client
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(logger *zap.Logger, mongoClient *mongo.Client, redisClient *redis.Client) *HealthController {
	onceHealthController.Do(func() {
		instance := &HealthController{
			Log:         logger,
			MongoClient: mongoClient,
			RedisClient: redisClient,
		}
		healthControllerInstance = instance
	})
	return healthControllerInstance
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result := &responses.Health{
		Status: "ok",
		Mongo:  "up",
		Redis:  "up",
	}

	if err := ctrl.MongoClient.Ping(ctx, nil); err != nil {
		result.Status = "degraded"
		result.Mongo = "down"
	}
	if err := ctrl.RedisClient.Ping(ctx).Err(); err != nil {
		result.Status = "degraded"
		result.Redis = "down"
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}
