package pdfgen

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"json number", json.Number("42.5"), "42.5"},
		{"bool", true, "true"},
		{"float64", 3.5, "3.5"},
		{"int", 7, "7"},
		{"string slice", []string{"a", "b"}, "a, b"},
		{"mixed slice", []interface{}{"a", 1, true}, "a, 1, true"},
		{"map", map[string]interface{}{"k": "v"}, `{"k":"v"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Stringify(tc.value))
		})
	}
}

func TestStringifyTime(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01T12:00:00Z", Stringify(ts))
}

func TestHumanizeLabel(t *testing.T) {
	assert.Equal(t, "Full Name", HumanizeLabel("fullName"))
	assert.Equal(t, "Email", HumanizeLabel("email"))
	assert.Equal(t, "Date Of Birth", HumanizeLabel("dateOfBirth"))
	assert.Equal(t, "", HumanizeLabel(""))
}
