package submissions

import (
	"context"
	"fmt"
	"log"
	"time"

	"formflow-backend/src/database"
	"formflow-backend/src/jobs"
	"formflow-backend/src/models"
	"formflow-backend/src/services/forms"
	"formflow-backend/src/services/mappings"
	"formflow-backend/src/services/pdfgen"
	"formflow-backend/src/services/templates"
	"formflow-backend/src/storage"
	"formflow-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	submissionCollection *mongo.Collection
	store                *storage.Store
)

func init() {
	store = storage.New(storage.DefaultRoot())
	if err := database.ConnectMongoDB(); err != nil {
		log.Println("⚠️ MongoDB not available:", err)
		return
	}
	submissionCollection = database.SubmissionCollection
}

// PdfDeps are the collaborators of the PDF generation step. The default
// wiring loads from the template registry, the mapping store and file
// storage; tests substitute their own.
type PdfDeps struct {
	LoadTemplate func(ctx context.Context, id primitive.ObjectID) ([]byte, error)
	LoadMappings func(ctx context.Context, formID, templateID primitive.ObjectID) ([]models.FieldMapping, error)
	SaveArtifact func(key string, data []byte) (string, error)
}

func defaultPdfDeps() PdfDeps {
	return PdfDeps{
		LoadTemplate: templates.GetTemplateBytes,
		LoadMappings: func(ctx context.Context, formID, templateID primitive.ObjectID) ([]models.FieldMapping, error) {
			return mappings.ListMappings(ctx, &formID, &templateID)
		},
		SaveArtifact: func(key string, data []byte) (string, error) {
			return store.Put(key, data)
		},
	}
}

// CreateSubmission runs the submission pipeline: validate against the form
// schema, persist, then attempt PDF generation when the form asks for it.
// The PDF step is best effort; once the submission row is written nothing
// downstream can lose it.
func CreateSubmission(ctx context.Context, req *models.CreateSubmissionRequest) (*models.SubmissionResult, error) {
	if req.FormID == "" || req.Data == nil {
		return nil, utils.NewValidationError("formId and data are required")
	}
	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return nil, utils.NewValidationError("invalid formId")
	}

	form, err := forms.GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	if err := ValidateData(form, req.Data); err != nil {
		return nil, err
	}

	submission := &models.FormSubmission{
		FormID:      formID,
		Data:        *req.Data,
		SubmittedAt: time.Now(),
	}
	result, err := submissionCollection.InsertOne(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = result.InsertedID.(primitive.ObjectID)

	if form.EnablePdfGeneration && form.AutoGeneratePdf {
		AttachPdf(ctx, form, submission, defaultPdfDeps())
	}

	return &models.SubmissionResult{
		FormSubmission: *submission,
		FormSettings:   form.Settings(),
	}, nil
}

// AttachPdf renders and stores the submission's PDF and records its path.
// Any failure is logged and swallowed: the submission stays persisted with
// PdfGenerated false and the caller's response is unaffected.
func AttachPdf(ctx context.Context, form *models.Form, submission *models.FormSubmission, deps PdfDeps) {
	path, err := generatePdf(ctx, form, submission, deps)
	if err != nil {
		log.Printf("⚠️ PDF generation failed for submission %s: %v", submission.ID.Hex(), err)
		return
	}

	_, err = submissionCollection.UpdateOne(ctx,
		bson.M{"_id": submission.ID},
		bson.M{"$set": bson.M{"pdfPath": path, "pdfGenerated": true}},
	)
	if err != nil {
		log.Printf("⚠️ Failed to record PDF path for submission %s: %v", submission.ID.Hex(), err)
		return
	}
	submission.PdfPath = path
	submission.PdfGenerated = true
}

func generatePdf(ctx context.Context, form *models.Form, submission *models.FormSubmission, deps PdfDeps) (string, error) {
	if form.LinkedTemplateID == nil {
		return "", utils.NewValidationError("no PDF template linked to form %s", form.ID.Hex())
	}

	templateBytes, err := deps.LoadTemplate(ctx, *form.LinkedTemplateID)
	if err != nil {
		return "", err
	}
	fieldMappings, err := deps.LoadMappings(ctx, form.ID, *form.LinkedTemplateID)
	if err != nil {
		return "", err
	}

	pdfBytes, err := pdfgen.Render(templateBytes, toRenderMappings(fieldMappings), &submission.Data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("generated-pdfs/form_%s_submission_%s.pdf", form.ID.Hex(), submission.ID.Hex())
	return deps.SaveArtifact(key, pdfBytes)
}

func toRenderMappings(fieldMappings []models.FieldMapping) []pdfgen.Mapping {
	out := make([]pdfgen.Mapping, len(fieldMappings))
	for i, m := range fieldMappings {
		out[i] = pdfgen.Mapping{
			FieldName: m.FieldName,
			X:         m.X,
			Y:         m.Y,
			Width:     m.Width,
			Height:    m.Height,
		}
	}
	return out
}

// ValidateData checks submitted values against the form's schema: required
// fields must carry a value, and choice fields only accept their options.
func ValidateData(form *models.Form, data *models.SubmissionData) error {
	for _, field := range form.Fields {
		value, present := data.Get(field.Name)
		text := pdfgen.Stringify(value)

		if field.Required && (!present || text == "") {
			return utils.NewValidationError("required field not answered: %s", field.Name)
		}
		if !present || text == "" {
			continue
		}

		switch field.Type {
		case models.FieldDropdown, models.FieldRadio:
			if !containsOption(field.Options, text) {
				return utils.NewValidationError("invalid choice for field %s", field.Name)
			}
		case models.FieldCheckbox:
			choices, ok := value.([]interface{})
			if !ok {
				return utils.NewValidationError("array value required for checkbox field %s", field.Name)
			}
			for _, choice := range choices {
				if !containsOption(field.Options, pdfgen.Stringify(choice)) {
					return utils.NewValidationError("invalid choice for field %s", field.Name)
				}
			}
		}
	}
	return nil
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// GetSubmissions lists submissions joined with their form's name,
// optionally restricted to one form.
func GetSubmissions(ctx context.Context, formID *primitive.ObjectID) ([]models.SubmissionListItem, error) {
	match := bson.M{}
	if formID != nil {
		match["formId"] = *formID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "forms",
			"localField":   "formId",
			"foreignField": "_id",
			"as":           "form",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"formName": bson.M{"$ifNull": bson.A{bson.M{"$first": "$form.name"}, ""}},
		}}},
		{{Key: "$project", Value: bson.M{"form": 0}}},
		{{Key: "$sort", Value: bson.M{"submittedAt": -1}}},
	}

	cursor, err := submissionCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.SubmissionListItem{}
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetSubmissionByID resolves one submission.
func GetSubmissionByID(ctx context.Context, id primitive.ObjectID) (*models.FormSubmission, error) {
	var submission models.FormSubmission
	err := submissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("Submission")
		}
		return nil, err
	}
	return &submission, nil
}

// DownloadPdf returns the submission's PDF bytes, rendering a report-style
// document on the fly when no artifact was stored.
func DownloadPdf(ctx context.Context, id primitive.ObjectID) ([]byte, string, error) {
	submission, err := GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("submission_%s.pdf", id.Hex())

	if submission.PdfPath != "" {
		if data, err := store.Get(submission.PdfPath); err == nil {
			return data, fileName, nil
		}
		log.Println("⚠️ Warning: stored PDF missing, rendering on the fly:", submission.PdfPath)
	}

	data, err := pdfgen.Render(nil, nil, &submission.Data)
	if err != nil {
		return nil, "", err
	}
	return data, fileName, nil
}

// DeleteSubmission removes a submission and schedules removal of its
// generated PDF. The file cleanup runs through the job queue when Redis is
// up, inline best effort otherwise.
func DeleteSubmission(ctx context.Context, id primitive.ObjectID) error {
	submission, err := GetSubmissionByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := submissionCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}

	if submission.PdfPath != "" {
		if !jobs.EnqueueFileCleanup(submission.PdfPath) {
			store.DeleteQuiet(submission.PdfPath)
		}
	}
	return nil
}

// GetDashboardStats aggregates the admin dashboard counters.
func GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{SubmissionsByForm: map[string]int64{}}

	var err error
	if stats.TotalForms, err = database.FormCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.PublishedForms, err = database.FormCollection.CountDocuments(ctx, bson.M{"isPublished": true}); err != nil {
		return nil, err
	}
	if stats.TotalTemplates, err = database.TemplateCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalSubmissions, err = submissionCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$formId", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := submissionCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Count int64              `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.SubmissionsByForm[row.ID.Hex()] = row.Count
	}
	return stats, nil
}
