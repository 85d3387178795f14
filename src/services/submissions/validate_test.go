package submissions

import (
	"testing"

	"formflow-backend/src/models"
	"formflow-backend/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactForm() *models.Form {
	return &models.Form{
		Fields: []models.FormField{
			{ID: "f1", Type: models.FieldText, Name: "fullName", Required: true},
			{ID: "f2", Type: models.FieldText, Name: "nickname"},
			{ID: "f3", Type: models.FieldDropdown, Name: "topic", Options: []string{"Sales", "Support"}},
			{ID: "f4", Type: models.FieldCheckbox, Name: "channels", Options: []string{"Email", "Phone"}},
		},
	}
}

func TestValidateDataAccepts(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "Somchai Jaidee")
	data.Set("topic", "Sales")
	data.Set("channels", []interface{}{"Email", "Phone"})

	assert.NoError(t, ValidateData(contactForm(), data))
}

func TestValidateDataRequiredMissing(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("topic", "Sales")

	err := ValidateData(contactForm(), data)
	require.Error(t, err)
	assert.True(t, utils.IsValidation(err))
	assert.ErrorContains(t, err, "fullName")
}

func TestValidateDataRequiredEmptyString(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "")

	err := ValidateData(contactForm(), data)
	require.Error(t, err)
	assert.True(t, utils.IsValidation(err))
}

func TestValidateDataOptionalMissing(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "Somchai Jaidee")

	assert.NoError(t, ValidateData(contactForm(), data))
}

func TestValidateDataInvalidChoice(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "Somchai Jaidee")
	data.Set("topic", "Gossip")

	err := ValidateData(contactForm(), data)
	require.Error(t, err)
	assert.True(t, utils.IsValidation(err))
}

func TestValidateDataCheckboxNeedsArray(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "Somchai Jaidee")
	data.Set("channels", "Email")

	err := ValidateData(contactForm(), data)
	require.Error(t, err)
	assert.True(t, utils.IsValidation(err))
}

func TestValidateDataCheckboxInvalidMember(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "Somchai Jaidee")
	data.Set("channels", []interface{}{"Email", "Fax"})

	err := ValidateData(contactForm(), data)
	require.Error(t, err)
	assert.True(t, utils.IsValidation(err))
}

func TestValidateDataIgnoresUnknownKeys(t *testing.T) {
	data := models.NewSubmissionData()
	data.Set("fullName", "Somchai Jaidee")
	data.Set("notAField", "whatever")

	assert.NoError(t, ValidateData(contactForm(), data))
}
