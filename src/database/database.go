package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "FormFlowDB"

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB runs only once
	connectErr error

	FormCollection       *mongo.Collection
	TemplateCollection   *mongo.Collection
	MappingCollection    *mongo.Collection
	SubmissionCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and wires the collections. The
// caller decides whether a failure is fatal; main treats it that way, tests
// of pure service logic do not.
func ConnectMongoDB() error {

	once.Do(func() {
		err := godotenv.Load()
		if err != nil {
			log.Println("⚠️ Warning: No .env file found")
		}

		mongoURI := os.Getenv("MONGO_URI")
		if mongoURI == "" {
			connectErr = errors.New("MONGO_URI environment variable not set")
			return
		}

		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Println("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Println("❌ MongoDB ping failed:", connectErr)
			client = nil
			return
		}

		FormCollection = GetCollection(DBName, "forms")
		TemplateCollection = GetCollection(DBName, "pdfTemplates")
		MappingCollection = GetCollection(DBName, "fieldMappings")
		SubmissionCollection = GetCollection(DBName, "formSubmissions")

		log.Println("✅ MongoDB connected successfully")
		ListDatabases()
	})

	return connectErr
}

// ListDatabases prints every database the connection can see.
func ListDatabases() {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}

	dbs, err := client.ListDatabaseNames(context.TODO(), bson.M{})
	if err != nil {
		log.Fatal("❌ Error listing databases:", err)
	}

	fmt.Println("📌 Databases in MongoDB:")
	for _, db := range dbs {
		fmt.Println(" -", db)
	}
}

// GetCollection returns a collection handle.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
