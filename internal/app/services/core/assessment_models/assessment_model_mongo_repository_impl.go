package assessmentModels

import (
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssessmentModelMongoRepository struct {
	ModelCollection      *mongo.Collection
	SectionCollection    *mongo.Collection
	FieldCollection      *mongo.Collection
	AssessmentCollection *mongo.Collection
	ResultCollection     *mongo.Collection
	CounterCollection    *mongo.Collection
}

func NewAssessmentModelMongoRepository(db *mongo.Client, dbName string) contracts.ModelSchemaRepository {
	return &AssessmentModelMongoRepository{
		ModelCollection:      db.Database(dbName).Collection(constvars.MongoCollectionAssessmentModels),
		SectionCollection:    db.Database(dbName).Collection(constvars.MongoCollectionAssessmentSections),
		FieldCollection:      db.Database(dbName).Collection(constvars.MongoCollectionAssessmentFields),
		AssessmentCollection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
		ResultCollection:     db.Database(dbName).Collection(constvars.MongoCollectionAssessmentResults),
		CounterCollection:    db.Database(dbName).Collection(constvars.MongoCollectionCounters),
	}
}

// nextOrderIndex allocates the next position within a scope (sections of one
// model, fields of one section) through a counter document upsert. Two
// concurrent creations can never observe the same index; the old
// read-the-max-then-insert approach could.
func (repo *AssessmentModelMongoRepository) nextOrderIndex(ctx context.Context, scope string) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := repo.CounterCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": scope},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBAllocateIndex(err)
	}
	// Seq starts at 1 on the upserting increment; positions start at 0.
	return counter.Seq - 1, nil
}

func sectionCounterScope(modelID string) string {
	return fmt.Sprintf("%s:%s", constvars.MongoCollectionAssessmentSections, modelID)
}

func fieldCounterScope(sectionID string) string {
	return fmt.Sprintf("%s:%s", constvars.MongoCollectionAssessmentFields, sectionID)
}

func (repo *AssessmentModelMongoRepository) CreateModel(ctx context.Context, model *models.AssessmentModel) (string, error) {
	result, err := repo.ModelCollection.InsertOne(ctx, model)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentModelMongoRepository) FindModelByID(ctx context.Context, modelID string) (*models.AssessmentModel, error) {
	objectID, err := primitive.ObjectIDFromHex(modelID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var model models.AssessmentModel
	err = repo.ModelCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&model)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &model, nil
}

func (repo *AssessmentModelMongoRepository) FindAllModels(ctx context.Context, page, pageSize int) ([]models.AssessmentModel, int, error) {
	total, err := repo.ModelCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"name": 1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.ModelCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var assessmentModels []models.AssessmentModel
	err = cursor.All(ctx, &assessmentModels)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assessmentModels, int(total), nil
}

func (repo *AssessmentModelMongoRepository) UpdateModel(ctx context.Context, model *models.AssessmentModel) error {
	objectID, err := primitive.ObjectIDFromHex(model.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"name":        model.Name,
			"description": model.Description,
			"updatedAt":   model.UpdatedAt,
		},
	}
	_, err = repo.ModelCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// DeleteModelByID cascades: fields, sections, assessments and their results,
// counter documents, then the model itself.
func (repo *AssessmentModelMongoRepository) DeleteModelByID(ctx context.Context, modelID string) error {
	objectID, err := primitive.ObjectIDFromHex(modelID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	sectionIDs, err := repo.sectionIDsByModelID(ctx, modelID)
	if err != nil {
		return err
	}

	counterScopes := []string{sectionCounterScope(modelID)}
	for _, sectionID := range sectionIDs {
		counterScopes = append(counterScopes, fieldCounterScope(sectionID))
	}

	if len(sectionIDs) > 0 {
		_, err = repo.FieldCollection.DeleteMany(ctx, bson.M{"sectionId": bson.M{"$in": sectionIDs}})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
		_, err = repo.SectionCollection.DeleteMany(ctx, bson.M{"modelId": modelID})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
	}

	assessmentIDs, err := repo.assessmentIDsByModelID(ctx, modelID)
	if err != nil {
		return err
	}
	if len(assessmentIDs) > 0 {
		_, err = repo.ResultCollection.DeleteMany(ctx, bson.M{"assessmentId": bson.M{"$in": assessmentIDs}})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
		_, err = repo.AssessmentCollection.DeleteMany(ctx, bson.M{"modelId": modelID})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
	}

	_, err = repo.CounterCollection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": counterScopes}})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	_, err = repo.ModelCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *AssessmentModelMongoRepository) CreateSection(ctx context.Context, section *models.AssessmentSection) (string, error) {
	orderIndex, err := repo.nextOrderIndex(ctx, sectionCounterScope(section.ModelID))
	if err != nil {
		return "", err
	}
	section.OrderIndex = orderIndex

	result, err := repo.SectionCollection.InsertOne(ctx, section)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentModelMongoRepository) FindSectionByID(ctx context.Context, sectionID string) (*models.AssessmentSection, error) {
	objectID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var section models.AssessmentSection
	err = repo.SectionCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&section)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &section, nil
}

func (repo *AssessmentModelMongoRepository) UpdateSection(ctx context.Context, section *models.AssessmentSection) error {
	objectID, err := primitive.ObjectIDFromHex(section.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"title":       section.Title,
			"description": section.Description,
			"updatedAt":   section.UpdatedAt,
		},
	}
	_, err = repo.SectionCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AssessmentModelMongoRepository) DeleteSectionByID(ctx context.Context, sectionID string) error {
	objectID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	fieldIDs, err := repo.fieldIDsBySectionID(ctx, sectionID)
	if err != nil {
		return err
	}
	if len(fieldIDs) > 0 {
		_, err = repo.ResultCollection.DeleteMany(ctx, bson.M{"fieldId": bson.M{"$in": fieldIDs}})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
		_, err = repo.FieldCollection.DeleteMany(ctx, bson.M{"sectionId": sectionID})
		if err != nil {
			return exceptions.ErrMongoDBDeleteDocument(err)
		}
	}

	_, err = repo.CounterCollection.DeleteOne(ctx, bson.M{"_id": fieldCounterScope(sectionID)})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	_, err = repo.SectionCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *AssessmentModelMongoRepository) CreateField(ctx context.Context, field *models.AssessmentField) (string, error) {
	orderIndex, err := repo.nextOrderIndex(ctx, fieldCounterScope(field.SectionID))
	if err != nil {
		return "", err
	}
	field.OrderIndex = orderIndex

	result, err := repo.FieldCollection.InsertOne(ctx, field)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AssessmentModelMongoRepository) FindFieldByID(ctx context.Context, fieldID string) (*models.AssessmentField, error) {
	objectID, err := primitive.ObjectIDFromHex(fieldID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var field models.AssessmentField
	err = repo.FieldCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&field)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &field, nil
}

func (repo *AssessmentModelMongoRepository) UpdateField(ctx context.Context, field *models.AssessmentField) error {
	objectID, err := primitive.ObjectIDFromHex(field.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"label":     field.Label,
			"type":      field.Type,
			"required":  field.Required,
			"options":   field.Options,
			"updatedAt": field.UpdatedAt,
		},
	}
	_, err = repo.FieldCollection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AssessmentModelMongoRepository) DeleteFieldByID(ctx context.Context, fieldID string) error {
	objectID, err := primitive.ObjectIDFromHex(fieldID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.ResultCollection.DeleteMany(ctx, bson.M{"fieldId": fieldID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	_, err = repo.FieldCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// FindSchemaByModelID loads the whole aggregate, sections and their fields
// sorted ascending by orderIndex.
func (repo *AssessmentModelMongoRepository) FindSchemaByModelID(ctx context.Context, modelID string) (*models.ModelSchema, error) {
	model, err := repo.FindModelByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, nil
	}

	sectionOptions := options.Find().SetSort(bson.M{"orderIndex": 1})
	cursor, err := repo.SectionCollection.Find(ctx, bson.M{"modelId": modelID}, sectionOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var sections []models.AssessmentSection
	err = cursor.All(ctx, &sections)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	schema := &models.ModelSchema{Model: *model, Sections: make([]models.SchemaSection, len(sections))}
	if len(sections) == 0 {
		return schema, nil
	}

	sectionIDs := make([]string, len(sections))
	for i, section := range sections {
		sectionIDs[i] = section.ID
	}

	fieldOptions := options.Find().SetSort(bson.M{"orderIndex": 1})
	cursor, err = repo.FieldCollection.Find(ctx, bson.M{"sectionId": bson.M{"$in": sectionIDs}}, fieldOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var fields []models.AssessmentField
	err = cursor.All(ctx, &fields)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	fieldsBySection := make(map[string][]models.AssessmentField)
	for _, field := range fields {
		fieldsBySection[field.SectionID] = append(fieldsBySection[field.SectionID], field)
	}

	for i, section := range sections {
		schema.Sections[i] = models.SchemaSection{
			Section: section,
			Fields:  fieldsBySection[section.ID],
		}
	}
	return schema, nil
}

func (repo *AssessmentModelMongoRepository) sectionIDsByModelID(ctx context.Context, modelID string) ([]string, error) {
	cursor, err := repo.SectionCollection.Find(ctx, bson.M{"modelId": modelID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var sections []models.AssessmentSection
	err = cursor.All(ctx, &sections)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	sectionIDs := make([]string, len(sections))
	for i, section := range sections {
		sectionIDs[i] = section.ID
	}
	return sectionIDs, nil
}

func (repo *AssessmentModelMongoRepository) assessmentIDsByModelID(ctx context.Context, modelID string) ([]string, error) {
	cursor, err := repo.AssessmentCollection.Find(ctx, bson.M{"modelId": modelID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var assessments []models.Assessment
	err = cursor.All(ctx, &assessments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	assessmentIDs := make([]string, len(assessments))
	for i, assessment := range assessments {
		assessmentIDs[i] = assessment.ID
	}
	return assessmentIDs, nil
}

func (repo *AssessmentModelMongoRepository) fieldIDsBySectionID(ctx context.Context, sectionID string) ([]string, error) {
	cursor, err := repo.FieldCollection.Find(ctx, bson.M{"sectionId": sectionID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var fields []models.AssessmentField
	err = cursor.All(ctx, &fields)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	fieldIDs := make([]string, len(fields))
	for i, field := range fields {
		fieldIDs[i] = field.ID
	}
	return fieldIDs, nil
}
