package models

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"house-of-rahaa/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.MongoURL))
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal("DB ping failed:", err)
	}

	Client = client
	DB = client.Database(config.AppConfig.DBName)

	log.Println("Database connected successfully")

	ensureIndexes(ctx)
}

// ensureIndexes applies the only schema-like invariant the store carries:
// user emails are unique. Order documents deliberately get no uniqueness
// constraint on the gateway payment id.
func ensureIndexes(ctx context.Context) {
	_, err := Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("Warning: failed to ensure users.email index:", err)
	}
}

func CloseDB() {
	if Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Client.Disconnect(ctx); err != nil {
			log.Println("Error closing database connection:", err)
			return
		}
		log.Println("Database connection closed")
	}
}

func Users() *mongo.Collection      { return DB.Collection("users") }
func Products() *mongo.Collection   { return DB.Collection("products") }
func Categories() *mongo.Collection { return DB.Collection("categories") }
func Orders() *mongo.Collection     { return DB.Collection("orders") }
