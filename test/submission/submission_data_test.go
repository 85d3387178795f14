package submission

import (
	"encoding/json"
	"testing"

	"formflow-backend/src/models"
	"formflow-backend/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionPayloads(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Submission Payload Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestCreateRequestDecoding", func(t *testing.T) {
		timer := test.NewTestTimer("Create Request Decoding")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Create Request Decoding",
				Duration: duration,
				Passed:   true,
			})
		}()

		raw := `{"formId":"665f1f77bcf86cd799439011","data":{"fullName":"Somchai Jaidee","topics":["Sales","Support"]}}`

		var req models.CreateSubmissionRequest
		require.NoError(t, json.Unmarshal([]byte(raw), &req))

		assert.Equal(t, "665f1f77bcf86cd799439011", req.FormID)
		require.NotNil(t, req.Data)
		assert.Equal(t, []string{"fullName", "topics"}, req.Data.Keys())

		topics, ok := req.Data.Get("topics")
		require.True(t, ok)
		assert.Equal(t, []interface{}{"Sales", "Support"}, topics)
	})

	t.Run("TestFieldOrderSurvivesDecode", func(t *testing.T) {
		timer := test.NewTestTimer("Field Order Survives Decode")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Field Order Survives Decode",
				Duration: duration,
				Passed:   true,
			})
		}()

		// The public form posts fields in display order; the generated
		// PDF lists them in the same order.
		raw := `{"zLast":"1","aFirst":"2","mMiddle":"3"}`

		var data models.SubmissionData
		require.NoError(t, json.Unmarshal([]byte(raw), &data))
		assert.Equal(t, []string{"zLast", "aFirst", "mMiddle"}, data.Keys())
	})

	t.Run("TestResultCarriesFormSettings", func(t *testing.T) {
		timer := test.NewTestTimer("Result Carries Form Settings")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Result Carries Form Settings",
				Duration: duration,
				Passed:   true,
			})
		}()

		form := models.Form{
			ThankYouMessage: "Thank you!",
			EnableRedirect:  true,
			RedirectURL:     "https://example.com/done",
		}

		result := models.SubmissionResult{FormSettings: form.Settings()}

		out, err := json.Marshal(result)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(out, &decoded))

		settings, ok := decoded["formSettings"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Thank you!", settings["thankYouMessage"])
		assert.Equal(t, true, settings["enableRedirect"])
		assert.Equal(t, "https://example.com/done", settings["redirectUrl"])
	})
}
