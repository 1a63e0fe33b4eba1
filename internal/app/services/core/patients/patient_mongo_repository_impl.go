package patients

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

type PatientMongoRepository struct {
	Collection           *mongo.Collection
	AssessmentCollection *mongo.Collection
	ResultCollection     *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection:           db.Database(dbName).Collection(constvars.MongoCollectionPatients),
		AssessmentCollection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
		ResultCollection:     db.Database(dbName).Collection(constvars.MongoCollectionAssessmentResults),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindAllPatients(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"name": 1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var patients []models.Patient
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, int(total), nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"name":           patient.Name,
			"email":          patient.Email,
			"phone":          patient.Phone,
			"birthDate":      patient.BirthDate,
			"gender":         patient.Gender,
			"address":        patient.Address,
			"medicalHistory": patient.MedicalHistory,
			"updatedAt":      patient.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// DeletePatientByID removes the patient together with every assessment and
// stored result that references them.
func (repo *PatientMongoRepository) DeletePatientByID(ctx context.Context, patientID string) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	cursor, err := repo.AssessmentCollection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return exceptions.ErrMongoDBFindDocument(err)
	}
	var assessments []models.Assessment
	err = cursor.All(ctx, &assessments)
	if err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}

	if len(assessments) > 0 {
		assessmentIDs := make([]string, len(assessments))
		for i, assessment := range assessments {
			assessmentIDs[i] = assessment.ID
		}
		_, err = repo.ResultCollection.DeleteMany(ctx, bson.M{"assessmentId": bson.M{"$in": assessmentIDs}})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
		_, err = repo.AssessmentCollection.DeleteMany(ctx, bson.M{"patientId": patientID})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
