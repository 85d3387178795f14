package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default rectangle for a freshly dropped field on the mapping canvas.
const (
	DefaultMappingWidth  = 150
	DefaultMappingHeight = 30
)

// FieldMapping places one form field on the template preview canvas.
// Coordinates are canvas pixels with a top-left origin; the PDF renderer
// converts them to the template's point coordinate system.
// FieldName references Form.Fields[].Name by value, not by foreign key, so
// a rename on the form side can orphan a mapping.
type FieldMapping struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID     primitive.ObjectID `bson:"formId" json:"formId"`
	TemplateID primitive.ObjectID `bson:"templateId" json:"templateId"`
	FieldName  string             `bson:"fieldName" json:"fieldName"`
	X          int                `bson:"x" json:"x"`
	Y          int                `bson:"y" json:"y"`
	Width      int                `bson:"width" json:"width"`
	Height     int                `bson:"height" json:"height"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateMappingRequest is the drag-drop payload from the mapping canvas.
type CreateMappingRequest struct {
	FormID     string `json:"formId" validate:"required"`
	TemplateID string `json:"templateId" validate:"required"`
	FieldName  string `json:"fieldName" validate:"required"`
	X          *int   `json:"x" validate:"required,gte=0"`
	Y          *int   `json:"y" validate:"required,gte=0"`
	Width      *int   `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height     *int   `json:"height,omitempty" validate:"omitempty,gt=0"`
}

// UpdateMappingRequest is a partial update from a drag or resize. Only
// present fields are written.
type UpdateMappingRequest struct {
	X      *int `json:"x,omitempty" validate:"omitempty,gte=0"`
	Y      *int `json:"y,omitempty" validate:"omitempty,gte=0"`
	Width  *int `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height *int `json:"height,omitempty" validate:"omitempty,gt=0"`
}
