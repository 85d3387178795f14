package templates

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"formflow-backend/src/database"
	"formflow-backend/src/models"
	"formflow-backend/src/services/mappings"
	"formflow-backend/src/services/pdfgen"
	"formflow-backend/src/storage"
	"formflow-backend/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	templateCollection *mongo.Collection
	store              *storage.Store
)

func init() {
	store = storage.New(storage.DefaultRoot())
	if err := database.ConnectMongoDB(); err != nil {
		log.Println("⚠️ MongoDB not available:", err)
		return
	}
	templateCollection = database.TemplateCollection
}

// UploadTemplate validates and persists an uploaded PDF template. The
// declared content type is checked first, then the bytes are parsed, so a
// mislabeled file never corrupts the registry. The storage key is derived
// from a fresh uuid, never from the original filename alone.
func UploadTemplate(ctx context.Context, fileBytes []byte, fileName, declaredType, name string) (*models.PdfTemplate, error) {
	if len(fileBytes) == 0 {
		return nil, utils.NewValidationError("no file provided")
	}
	if declaredType != "application/pdf" {
		return nil, utils.NewValidationError("only PDF files are allowed")
	}
	if err := pdfgen.ValidatePDF(fileBytes); err != nil {
		return nil, utils.NewValidationError("file is not a valid PDF: %v", err)
	}

	fileName = filepath.Base(fileName)
	path, err := store.Put(templateKey(fileName), fileBytes)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = fileName
	}
	template := &models.PdfTemplate{
		Name:      name,
		FileName:  fileName,
		FilePath:  path,
		FileSize:  int64(len(fileBytes)),
		CreatedAt: time.Now(),
	}

	result, err := templateCollection.InsertOne(ctx, template)
	if err != nil {
		store.DeleteQuiet(path)
		return nil, err
	}
	template.ID = result.InsertedID.(primitive.ObjectID)
	return template, nil
}

// templateKey builds the storage key for an uploaded template. fileName must
// already be stripped to its base name; a client-supplied path segment must
// never steer the key outside the templates/ prefix.
func templateKey(fileName string) string {
	return fmt.Sprintf("templates/%s_%s", uuid.NewString(), filepath.Base(fileName))
}

// GetTemplates lists all templates, newest first.
func GetTemplates(ctx context.Context) ([]models.PdfTemplate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := templateCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	templates := []models.PdfTemplate{}
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplateByID resolves a template row.
func GetTemplateByID(ctx context.Context, id primitive.ObjectID) (*models.PdfTemplate, error) {
	var template models.PdfTemplate
	err := templateCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("Template")
		}
		return nil, err
	}
	return &template, nil
}

// GetTemplateBytes loads the backing PDF binary for a template.
func GetTemplateBytes(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
	template, err := GetTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return store.Get(template.FilePath)
}

// DeleteTemplate removes the metadata row, its mappings, and the backing
// binary. Binary removal is best effort: a missing or locked file must not
// keep the row alive.
func DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	template, err := GetTemplateByID(ctx, id)
	if err != nil {
		return err
	}

	store.DeleteQuiet(template.FilePath)

	if _, err := templateCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}

	if n, err := mappings.DeleteByTemplate(ctx, id); err != nil {
		log.Println("⚠️ Warning: failed to cascade mappings for template", id.Hex(), err)
	} else if n > 0 {
		log.Printf("🧹 Removed %d mappings of template %s", n, id.Hex())
	}
	return nil
}
