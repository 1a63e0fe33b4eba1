package main

import (
	"avalia-service/internal/app/config"
	"avalia-service/internal/app/drivers/database"
	"avalia-service/internal/pkg/constvars"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the form engine relies on: unique order positions per
// scope and the one-row-per-(assessment, field) result constraint.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAssessmentSections), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "modelId", Value: 1}, {Key: "orderIndex", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAssessmentFields), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sectionId", Value: 1}, {Key: "orderIndex", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAssessmentResults), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "assessmentId", Value: 1}, {Key: "fieldId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionAssessments), []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "modelId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})

	err := mongoDB.Disconnect(ctx)
	if err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}

	log.Println("Indexes created")
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) {
	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Error creating indexes on %s: %v", collection.Name(), err)
	}
	log.Printf("Created indexes on %s: %v", collection.Name(), names)
}
