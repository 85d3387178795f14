package submissions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"formflow-backend/src/models"
	"formflow-backend/src/services/pdfgen"
	"formflow-backend/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func pdfForm(templateID *primitive.ObjectID) *models.Form {
	return &models.Form{
		ID: primitive.NewObjectID(),
		Fields: []models.FormField{
			{ID: "f1", Type: models.FieldText, Name: "fullName"},
		},
		EnablePdfGeneration: true,
		AutoGeneratePdf:     true,
		LinkedTemplateID:    templateID,
	}
}

func pdfSubmission(formID primitive.ObjectID) *models.FormSubmission {
	data := models.NewSubmissionData()
	data.Set("fullName", "Ada Lovelace")
	return &models.FormSubmission{
		ID:          primitive.NewObjectID(),
		FormID:      formID,
		Data:        *data,
		SubmittedAt: time.Now(),
	}
}

func TestGeneratePdfStoresArtifact(t *testing.T) {
	templateID := primitive.NewObjectID()
	form := pdfForm(&templateID)
	submission := pdfSubmission(form.ID)

	templateBytes, err := pdfgen.Render(nil, nil, models.NewSubmissionData())
	require.NoError(t, err)

	var savedKey string
	deps := PdfDeps{
		LoadTemplate: func(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
			assert.Equal(t, templateID, id)
			return templateBytes, nil
		},
		LoadMappings: func(ctx context.Context, formID, tmplID primitive.ObjectID) ([]models.FieldMapping, error) {
			assert.Equal(t, form.ID, formID)
			assert.Equal(t, templateID, tmplID)
			return []models.FieldMapping{
				{FieldName: "fullName", X: 50, Y: 700, Width: 150, Height: 30},
			}, nil
		},
		SaveArtifact: func(key string, data []byte) (string, error) {
			savedKey = key
			assert.NotEmpty(t, data)
			return "/" + key, nil
		},
	}

	path, err := generatePdf(context.Background(), form, submission, deps)
	require.NoError(t, err)

	wantKey := fmt.Sprintf("generated-pdfs/form_%s_submission_%s.pdf", form.ID.Hex(), submission.ID.Hex())
	assert.Equal(t, wantKey, savedKey)
	assert.Equal(t, "/"+wantKey, path)
}

func TestGeneratePdfNoLinkedTemplate(t *testing.T) {
	form := pdfForm(nil)
	submission := pdfSubmission(form.ID)

	_, err := generatePdf(context.Background(), form, submission, PdfDeps{})
	require.Error(t, err)
	assert.True(t, utils.IsValidation(err))
}

func TestAttachPdfSwallowsMissingTemplate(t *testing.T) {
	// A linkedTemplateId that does not resolve must never fail the
	// submission; it just stays without a PDF.
	templateID := primitive.NewObjectID()
	form := pdfForm(&templateID)
	submission := pdfSubmission(form.ID)

	deps := PdfDeps{
		LoadTemplate: func(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
			return nil, utils.NewNotFoundError("Template")
		},
	}

	AttachPdf(context.Background(), form, submission, deps)

	assert.False(t, submission.PdfGenerated)
	assert.Empty(t, submission.PdfPath)
}

func TestAttachPdfSwallowsRenderFailure(t *testing.T) {
	templateID := primitive.NewObjectID()
	form := pdfForm(&templateID)
	submission := pdfSubmission(form.ID)

	deps := PdfDeps{
		LoadTemplate: func(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
			return []byte("not a pdf"), nil
		},
		LoadMappings: func(ctx context.Context, formID, tmplID primitive.ObjectID) ([]models.FieldMapping, error) {
			return []models.FieldMapping{
				{FieldName: "fullName", X: 50, Y: 700, Width: 150, Height: 30},
			}, nil
		},
	}

	AttachPdf(context.Background(), form, submission, deps)

	assert.False(t, submission.PdfGenerated)
	assert.Empty(t, submission.PdfPath)
}

func TestAttachPdfSwallowsStorageFailure(t *testing.T) {
	templateID := primitive.NewObjectID()
	form := pdfForm(&templateID)
	submission := pdfSubmission(form.ID)

	templateBytes, err := pdfgen.Render(nil, nil, models.NewSubmissionData())
	require.NoError(t, err)

	deps := PdfDeps{
		LoadTemplate: func(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
			return templateBytes, nil
		},
		LoadMappings: func(ctx context.Context, formID, tmplID primitive.ObjectID) ([]models.FieldMapping, error) {
			return nil, nil
		},
		SaveArtifact: func(key string, data []byte) (string, error) {
			return "", errors.New("disk full")
		},
	}

	AttachPdf(context.Background(), form, submission, deps)

	assert.False(t, submission.PdfGenerated)
	assert.Empty(t, submission.PdfPath)
}

func TestToRenderMappings(t *testing.T) {
	in := []models.FieldMapping{
		{FieldName: "fullName", X: 50, Y: 700, Width: 150, Height: 30},
		{FieldName: "email", X: 50, Y: 650, Width: 200, Height: 30},
	}

	out := toRenderMappings(in)
	require.Len(t, out, 2)
	assert.Equal(t, pdfgen.Mapping{FieldName: "fullName", X: 50, Y: 700, Width: 150, Height: 30}, out[0])
	assert.Equal(t, pdfgen.Mapping{FieldName: "email", X: 50, Y: 650, Width: 200, Height: 30}, out[1])
}
