package forms

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"formflow-backend/src/database"
	"formflow-backend/src/models"
	"formflow-backend/src/services/mappings"
	"formflow-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	formCollection       *mongo.Collection
	submissionCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Println("⚠️ MongoDB not available:", err)
		return
	}
	formCollection = database.FormCollection
	submissionCollection = database.SubmissionCollection
}

// CreateForm saves a new form from the builder.
func CreateForm(ctx context.Context, form *models.Form) (*models.Form, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, err
	}
	if err := ValidateFields(form.Fields); err != nil {
		return nil, err
	}
	if form.EnablePdfGeneration && form.LinkedTemplateID == nil {
		return nil, utils.NewValidationError("linkedTemplateId is required when PDF generation is enabled")
	}

	now := time.Now()
	form.ID = primitive.NilObjectID
	form.CreatedAt = now
	form.UpdatedAt = now
	if form.ThankYouMessage == "" {
		form.ThankYouMessage = models.DefaultThankYouMessage
	}

	result, err := formCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = result.InsertedID.(primitive.ObjectID)
	return form, nil
}

// GetForms lists all forms, newest first.
func GetForms(ctx context.Context) ([]models.Form, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := formCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// GetFormByID resolves one form.
func GetFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := formCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("Form")
		}
		return nil, err
	}
	return &form, nil
}

// UpdateForm replaces a form's definition and settings. After the write it
// checks the form's mappings for field names the new definition no longer
// carries and logs each orphan, since a renamed field silently detaches its
// placements.
func UpdateForm(ctx context.Context, id primitive.ObjectID, form *models.Form) (*models.Form, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, err
	}
	if err := ValidateFields(form.Fields); err != nil {
		return nil, err
	}
	if form.EnablePdfGeneration && form.LinkedTemplateID == nil {
		return nil, utils.NewValidationError("linkedTemplateId is required when PDF generation is enabled")
	}

	set := bson.M{
		"name":                form.Name,
		"description":         form.Description,
		"fields":              form.Fields,
		"thankYouMessage":     form.ThankYouMessage,
		"enableRedirect":      form.EnableRedirect,
		"redirectUrl":         form.RedirectURL,
		"enablePdfGeneration": form.EnablePdfGeneration,
		"linkedTemplateId":    form.LinkedTemplateID,
		"autoGeneratePdf":     form.AutoGeneratePdf,
		"autoEmailPdf":        form.AutoEmailPdf,
		"showPdfDownload":     form.ShowPdfDownload,
		"updatedAt":           time.Now(),
	}

	var updated models.Form
	err := formCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("Form")
		}
		return nil, err
	}

	warnOrphanedMappings(ctx, &updated)
	return &updated, nil
}

// DeleteForm removes a form and cascades to its mappings and submissions.
func DeleteForm(ctx context.Context, id primitive.ObjectID) error {
	result, err := formCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("Form")
	}

	if n, err := mappings.DeleteByForm(ctx, id); err != nil {
		log.Println("⚠️ Warning: failed to cascade mappings for form", id.Hex(), err)
	} else if n > 0 {
		log.Printf("🧹 Removed %d mappings of form %s", n, id.Hex())
	}

	if res, err := submissionCollection.DeleteMany(ctx, bson.M{"formId": id}); err != nil {
		log.Println("⚠️ Warning: failed to cascade submissions for form", id.Hex(), err)
	} else if res.DeletedCount > 0 {
		log.Printf("🧹 Removed %d submissions of form %s", res.DeletedCount, id.Hex())
	}
	return nil
}

// PublishForm marks a form public and assigns its URL and embed code.
func PublishForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	publishURL := fmt.Sprintf("%s/f/%s", appURL(), id.Hex())
	embedCode := fmt.Sprintf(`<iframe src="%s" width="100%%" height="600" frameborder="0"></iframe>`, publishURL)

	return setPublishState(ctx, id, bson.M{
		"isPublished": true,
		"publishUrl":  publishURL,
		"embedCode":   embedCode,
		"updatedAt":   time.Now(),
	})
}

// UnpublishForm takes a form offline and clears its URL and embed code.
func UnpublishForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	return setPublishState(ctx, id, bson.M{
		"isPublished": false,
		"publishUrl":  "",
		"embedCode":   "",
		"updatedAt":   time.Now(),
	})
}

func setPublishState(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	var updated models.Form
	err := formCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("Form")
		}
		return nil, err
	}
	return &updated, nil
}

func appURL() string {
	if url := os.Getenv("APP_URL"); url != "" {
		return url
	}
	return "http://localhost:8888"
}

// ValidateFields checks the builder's field list: names must be present and
// unique, and choice fields need options.
func ValidateFields(fields []models.FormField) error {
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			return utils.NewValidationError("field %q is missing a name", field.Label)
		}
		if seen[field.Name] {
			return utils.NewValidationError("duplicate field name %q", field.Name)
		}
		seen[field.Name] = true

		switch field.Type {
		case models.FieldDropdown, models.FieldRadio, models.FieldCheckbox:
			if len(field.Options) == 0 {
				return utils.NewValidationError("options are required for %s field %q", field.Type, field.Name)
			}
		}
	}
	return nil
}

// OrphanedMappings returns the field names of mappings that no longer match
// any field of the form.
func OrphanedMappings(form *models.Form, maps []models.FieldMapping) []string {
	var orphans []string
	for _, m := range maps {
		if _, ok := form.FieldByName(m.FieldName); !ok {
			orphans = append(orphans, m.FieldName)
		}
	}
	return orphans
}

func warnOrphanedMappings(ctx context.Context, form *models.Form) {
	maps, err := mappings.ListMappings(ctx, &form.ID, nil)
	if err != nil {
		log.Println("⚠️ Warning: could not check mappings for form", form.ID.Hex(), err)
		return
	}
	for _, name := range OrphanedMappings(form, maps) {
		log.Printf("⚠️ Warning: mapping for %q no longer matches a field of form %s", name, form.ID.Hex())
	}
}
