package form

import (
	"testing"

	"formflow-backend/src/models"
	"formflow-backend/test"

	"github.com/stretchr/testify/assert"
)

func TestFormDefinition(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Form Definition Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidFormDefinition", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Form Definition")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Valid Form Definition",
				Duration: duration,
				Passed:   true,
			})
		}()

		validForm := models.Form{
			Name:        "Contact Form",
			Description: "Reach out to our team",
			Fields: []models.FormField{
				{ID: "f1", Type: models.FieldText, Label: "Full Name", Name: "fullName", Required: true},
				{ID: "f2", Type: models.FieldEmail, Label: "Email", Name: "email", Required: true},
				{ID: "f3", Type: models.FieldDropdown, Label: "Topic", Name: "topic", Options: []string{"Sales", "Support"}},
			},
		}

		assert.NotEmpty(t, validForm.Name)
		assert.Len(t, validForm.Fields, 3)

		// Field names must be unique data keys
		seen := map[string]bool{}
		for _, field := range validForm.Fields {
			assert.NotEmpty(t, field.Name)
			assert.False(t, seen[field.Name])
			seen[field.Name] = true
		}

		// Choice fields carry their options
		topic, ok := validForm.FieldByName("topic")
		assert.True(t, ok)
		assert.NotEmpty(t, topic.Options)

		_, ok = validForm.FieldByName("missing")
		assert.False(t, ok)
	})

	t.Run("TestFieldTypes", func(t *testing.T) {
		timer := test.NewTestTimer("Field Types")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Field Types",
				Duration: duration,
				Passed:   true,
			})
		}()

		choiceTypes := []string{models.FieldDropdown, models.FieldRadio, models.FieldCheckbox}
		freeTypes := []string{
			models.FieldText, models.FieldTextarea, models.FieldNumber,
			models.FieldEmail, models.FieldPhone, models.FieldURL,
			models.FieldDate, models.FieldMultidate, models.FieldSignature,
		}

		for _, ft := range choiceTypes {
			assert.NotContains(t, freeTypes, ft)
		}
		assert.Len(t, append(choiceTypes, freeTypes...), 12)
	})

	t.Run("TestFormSettings", func(t *testing.T) {
		timer := test.NewTestTimer("Form Settings")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Form Settings",
				Duration: duration,
				Passed:   true,
			})
		}()

		form := models.Form{
			Name:                "Order Form",
			ThankYouMessage:     models.DefaultThankYouMessage,
			EnableRedirect:      true,
			RedirectURL:         "https://example.com/thanks",
			EnablePdfGeneration: true,
			ShowPdfDownload:     true,
		}

		settings := form.Settings()
		assert.True(t, settings.EnableRedirect)
		assert.Equal(t, "https://example.com/thanks", settings.RedirectURL)
		assert.True(t, settings.EnablePdfGeneration)
		assert.True(t, settings.ShowPdfDownload)
		assert.Equal(t, models.DefaultThankYouMessage, settings.ThankYouMessage)
		assert.False(t, settings.AutoEmailPdf)
	})

	t.Run("TestMappingDefaults", func(t *testing.T) {
		timer := test.NewTestTimer("Mapping Defaults")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Mapping Defaults",
				Duration: duration,
				Passed:   true,
			})
		}()

		assert.Equal(t, 150, models.DefaultMappingWidth)
		assert.Equal(t, 30, models.DefaultMappingHeight)

		mapping := models.FieldMapping{
			FieldName: "fullName",
			X:         100,
			Y:         700,
			Width:     models.DefaultMappingWidth,
			Height:    models.DefaultMappingHeight,
		}
		assert.GreaterOrEqual(t, mapping.X, 0)
		assert.GreaterOrEqual(t, mapping.Y, 0)
		assert.Greater(t, mapping.Width, 0)
		assert.Greater(t, mapping.Height, 0)
	})
}
