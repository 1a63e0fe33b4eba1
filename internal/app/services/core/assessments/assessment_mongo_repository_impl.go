package assessments

import (
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssessmentMongoRepository struct {
	Collection       *mongo.Collection
	ResultCollection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Client, dbName string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection:       db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
		ResultCollection: db.Database(dbName).Collection(constvars.MongoCollectionAssessmentResults),
	}
}

func (repo *AssessmentMongoRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentMongoRepository) FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var assessment models.Assessment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (repo *AssessmentMongoRepository) FindAllAssessments(ctx context.Context, patientID string, status models.AssessmentStatus, page, pageSize int) ([]models.Assessment, int, error) {
	filter := bson.M{}
	if patientID != "" {
		filter["patientId"] = patientID
	}
	if status != "" {
		filter["status"] = status
	}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"date": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var assessments []models.Assessment
	err = cursor.All(ctx, &assessments)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessments, int(total), nil
}

func (repo *AssessmentMongoRepository) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	objectID, err := primitive.ObjectIDFromHex(assessment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"title":     assessment.Title,
			"date":      assessment.Date,
			"status":    assessment.Status,
			"notes":     assessment.Notes,
			"updatedAt": assessment.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AssessmentMongoRepository) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.ResultCollection.DeleteMany(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// UpsertResults writes the validated batch in one ordered bulk operation,
// one replace-upsert per (assessmentId, fieldId) pair. Resubmitting a field
// overwrites the previous answer instead of stacking a duplicate row.
func (repo *AssessmentMongoRepository) UpsertResults(ctx context.Context, results []models.AssessmentResult) error {
	if len(results) == 0 {
		return nil
	}

	writeModels := make([]mongo.WriteModel, len(results))
	for i, result := range results {
		filter := bson.M{
			"assessmentId": result.AssessmentID,
			"fieldId":      result.FieldID,
		}
		replacement := bson.M{
			"assessmentId": result.AssessmentID,
			"fieldId":      result.FieldID,
			"value":        result.Value,
			"createdAt":    result.CreatedAt,
			"updatedAt":    result.UpdatedAt,
		}
		writeModels[i] = mongo.NewReplaceOneModel().
			SetFilter(filter).
			SetReplacement(replacement).
			SetUpsert(true)
	}

	_, err := repo.ResultCollection.BulkWrite(ctx, writeModels, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return exceptions.ErrMongoDBBulkWrite(err)
	}
	return nil
}

func (repo *AssessmentMongoRepository) FindResultsByAssessmentID(ctx context.Context, assessmentID string) ([]models.AssessmentResult, error) {
	cursor, err := repo.ResultCollection.Find(ctx, bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var results []models.AssessmentResult
	err = cursor.All(ctx, &results)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, nil
}
