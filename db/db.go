package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection     *mongo.Collection
	ProductCollection  *mongo.Collection
	CartCollection     *mongo.Collection
	OrderCollection    *mongo.Collection
	CounterCollection  *mongo.Collection
	DiscountCollection *mongo.Collection
	AddressCollection  *mongo.Collection
	SettingsCollection *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "milkbites"
	}

	clientOptions := options.Client().ApplyURI(mongoURL)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database(dbName).Collection("users")
	ProductCollection = Client.Database(dbName).Collection("products")
	CartCollection = Client.Database(dbName).Collection("carts")
	OrderCollection = Client.Database(dbName).Collection("orders")
	CounterCollection = Client.Database(dbName).Collection("counters")
	DiscountCollection = Client.Database(dbName).Collection("discounts")
	AddressCollection = Client.Database(dbName).Collection("addresses")
	SettingsCollection = Client.Database(dbName).Collection("settings")
}
