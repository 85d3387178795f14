package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormSubmission is one set of answers to a published form. PdfPath is
// filled in after creation when PDF generation succeeds and never otherwise.
type FormSubmission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID       primitive.ObjectID `bson:"formId" json:"formId"`
	Data         SubmissionData     `bson:"data" json:"data"`
	PdfPath      string             `bson:"pdfPath,omitempty" json:"pdfPath,omitempty"`
	PdfGenerated bool               `bson:"pdfGenerated" json:"pdfGenerated"`
	SubmittedAt  time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// SubmissionListItem joins a submission with its form's name for listings.
type SubmissionListItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	FormName    string             `bson:"formName" json:"formName"`
	Data        SubmissionData     `bson:"data" json:"data"`
	PdfPath     string             `bson:"pdfPath,omitempty" json:"pdfPath,omitempty"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// CreateSubmissionRequest is the public form's submit payload.
type CreateSubmissionRequest struct {
	FormID string          `json:"formId"`
	Data   *SubmissionData `json:"data"`
}

// SubmissionResult is returned to the public form page after a submit.
// PdfGenerated stays false when generation was skipped or failed; the
// submission itself is created either way.
type SubmissionResult struct {
	FormSubmission
	FormSettings FormSettings `json:"formSettings"`
}

// SubmissionData is a field-name -> value map that keeps the insertion
// order of the submitted JSON object. The renderer iterates entries in that
// order, so it has to survive both JSON and BSON round trips; plain Go maps
// and bson.M do not.
type SubmissionData struct {
	keys   []string
	values map[string]interface{}
}

// NewSubmissionData returns an empty ordered data map.
func NewSubmissionData() *SubmissionData {
	return &SubmissionData{values: map[string]interface{}{}}
}

// Set stores a value, appending the key on first sight.
func (d *SubmissionData) Set(key string, value interface{}) {
	if d.values == nil {
		d.values = map[string]interface{}{}
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key.
func (d *SubmissionData) Get(key string) (interface{}, bool) {
	if d == nil || d.values == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (d *SubmissionData) Keys() []string {
	if d == nil {
		return nil
	}
	return d.keys
}

// Len returns the number of entries.
func (d *SubmissionData) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

func (d *SubmissionData) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("submission data must be a JSON object")
	}

	d.keys = nil
	d.values = map[string]interface{}{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return err
		}
		d.Set(key, value)
	}

	_, err = dec.Token() // closing brace
	return err
}

func (d SubmissionData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(d.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalBSONValue persists the data as an ordered bson.D document.
func (d SubmissionData) MarshalBSONValue() (bsontype.Type, []byte, error) {
	doc := make(bson.D, 0, len(d.keys))
	for _, key := range d.keys {
		doc = append(doc, bson.E{Key: key, Value: d.values[key]})
	}
	return bson.MarshalValue(doc)
}

func (d *SubmissionData) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var doc bson.D
	if err := bson.UnmarshalValue(t, data, &doc); err != nil {
		return err
	}
	d.keys = nil
	d.values = map[string]interface{}{}
	for _, elem := range doc {
		d.Set(elem.Key, normalizeBSON(elem.Value))
	}
	return nil
}

// normalizeBSON rewrites the driver's bson.D / bson.A decode results into
// plain maps and slices so downstream code never sees bson types.
func normalizeBSON(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = normalizeBSON(e.Value)
		}
		return m
	case bson.A:
		s := make([]interface{}, len(val))
		for i, e := range val {
			s[i] = normalizeBSON(e)
		}
		return s
	default:
		return v
	}
}
