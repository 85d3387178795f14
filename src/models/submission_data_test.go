package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSubmissionDataJSONKeepsOrder(t *testing.T) {
	raw := `{"zField":"last?","aField":1,"mField":true}`

	var data SubmissionData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	assert.Equal(t, []string{"zField", "aField", "mField"}, data.Keys())

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
	// JSONEq ignores order; the raw bytes must match too.
	assert.Equal(t, raw, string(out))
}

func TestSubmissionDataJSONNumbers(t *testing.T) {
	var data SubmissionData
	require.NoError(t, json.Unmarshal([]byte(`{"age":42}`), &data))

	v, ok := data.Get("age")
	require.True(t, ok)
	assert.Equal(t, json.Number("42"), v)
}

func TestSubmissionDataRejectsNonObject(t *testing.T) {
	var data SubmissionData
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &data))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &data))
}

func TestSubmissionDataSetOverwrites(t *testing.T) {
	data := NewSubmissionData()
	data.Set("a", 1)
	data.Set("b", 2)
	data.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, data.Keys())
	v, _ := data.Get("a")
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, data.Len())
}

func TestSubmissionDataBSONRoundTrip(t *testing.T) {
	data := NewSubmissionData()
	data.Set("zField", "text")
	data.Set("aField", []interface{}{"x", "y"})
	data.Set("nested", map[string]interface{}{"inner": "v"})

	doc := struct {
		Data SubmissionData `bson:"data"`
	}{Data: *data}

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded struct {
		Data SubmissionData `bson:"data"`
	}
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	assert.Equal(t, []string{"zField", "aField", "nested"}, decoded.Data.Keys())

	v, ok := decoded.Data.Get("zField")
	require.True(t, ok)
	assert.Equal(t, "text", v)

	arr, ok := decoded.Data.Get("aField")
	require.True(t, ok)
	assert.Equal(t, []interface{}{"x", "y"}, arr)

	nested, ok := decoded.Data.Get("nested")
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"inner": "v"}, nested)
}

func TestSubmissionDataNilSafe(t *testing.T) {
	var data *SubmissionData
	assert.Nil(t, data.Keys())
	assert.Equal(t, 0, data.Len())
	_, ok := data.Get("anything")
	assert.False(t, ok)
}
