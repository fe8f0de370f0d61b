package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"learnhub-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoConnectAttempts      = 3
	mongoConnectRetryInterval = 5 * time.Second
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)

	var client *mongo.Client
	var err error
	for attempt := 1; attempt <= mongoConnectAttempts; attempt++ {
		client, err = mongo.Connect(context.TODO(), dbOptions)
		if err == nil {
			err = client.Ping(context.TODO(), nil)
		}
		if err == nil {
			log.Println("Successfully connected to mongo database")
			return client
		}
		log.Printf("Failed to connect to mongo database (attempt %d/%d): %s", attempt, mongoConnectAttempts, err.Error())
		if attempt < mongoConnectAttempts {
			time.Sleep(mongoConnectRetryInterval)
		}
	}
	log.Fatalf("Giving up connecting to mongo database after %d attempts: %s", mongoConnectAttempts, err.Error())
	return nil
}
