package jobs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileCleanupTask(t *testing.T) {
	task, err := NewFileCleanupTask("/generated-pdfs/form_x_submission_y.pdf")
	require.NoError(t, err)
	assert.Equal(t, TypeFileCleanup, task.Type())

	var payload FileCleanupPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "/generated-pdfs/form_x_submission_y.pdf", payload.Path)
}
