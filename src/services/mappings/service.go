package mappings

import (
	"context"
	"log"
	"time"

	"formflow-backend/src/database"
	"formflow-backend/src/models"
	"formflow-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mappingCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Println("⚠️ MongoDB not available:", err)
		return
	}
	mappingCollection = database.MappingCollection
}

// CreateMapping stores a new field placement dropped onto the canvas.
// Width and height fall back to the canvas defaults when omitted.
func CreateMapping(ctx context.Context, req *models.CreateMappingRequest) (*models.FieldMapping, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return nil, utils.NewValidationError("invalid formId")
	}
	templateID, err := primitive.ObjectIDFromHex(req.TemplateID)
	if err != nil {
		return nil, utils.NewValidationError("invalid templateId")
	}

	mapping := &models.FieldMapping{
		FormID:     formID,
		TemplateID: templateID,
		FieldName:  req.FieldName,
		X:          *req.X,
		Y:          *req.Y,
		Width:      models.DefaultMappingWidth,
		Height:     models.DefaultMappingHeight,
		CreatedAt:  time.Now(),
	}
	if req.Width != nil {
		mapping.Width = *req.Width
	}
	if req.Height != nil {
		mapping.Height = *req.Height
	}

	result, err := mappingCollection.InsertOne(ctx, mapping)
	if err != nil {
		return nil, err
	}
	mapping.ID = result.InsertedID.(primitive.ObjectID)
	return mapping, nil
}

// ListMappings returns mappings filtered by form and/or template, in
// insertion order.
func ListMappings(ctx context.Context, formID, templateID *primitive.ObjectID) ([]models.FieldMapping, error) {
	filter := ListFilter(formID, templateID)

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := mappingCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	mappings := []models.FieldMapping{}
	if err = cursor.All(ctx, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// ListFilter builds the Mongo filter for ListMappings. Both ids nil means
// unfiltered.
func ListFilter(formID, templateID *primitive.ObjectID) bson.M {
	filter := bson.M{}
	if formID != nil {
		filter["formId"] = *formID
	}
	if templateID != nil {
		filter["templateId"] = *templateID
	}
	return filter
}

// UpdateMapping applies a partial position/size update from a drag or
// resize on the canvas. Last write wins between concurrent editors.
func UpdateMapping(ctx context.Context, id primitive.ObjectID, req *models.UpdateMappingRequest) (*models.FieldMapping, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.X != nil {
		set["x"] = *req.X
	}
	if req.Y != nil {
		set["y"] = *req.Y
	}
	if req.Width != nil {
		set["width"] = *req.Width
	}
	if req.Height != nil {
		set["height"] = *req.Height
	}
	if len(set) == 0 {
		return nil, utils.NewValidationError("no fields to update")
	}

	var updated models.FieldMapping
	err := mappingCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("Mapping")
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteMapping removes a single mapping. Deleting an absent id is an
// error, not a no-op, so client bugs surface instead of hiding.
func DeleteMapping(ctx context.Context, id primitive.ObjectID) error {
	result, err := mappingCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("Mapping")
	}
	return nil
}

// DeleteByForm removes every mapping owned by a form. Used by the form
// delete cascade.
func DeleteByForm(ctx context.Context, formID primitive.ObjectID) (int64, error) {
	result, err := mappingCollection.DeleteMany(ctx, bson.M{"formId": formID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByTemplate removes every mapping owned by a template. Used by the
// template delete cascade.
func DeleteByTemplate(ctx context.Context, templateID primitive.ObjectID) (int64, error) {
	result, err := mappingCollection.DeleteMany(ctx, bson.M{"templateId": templateID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
