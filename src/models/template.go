package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PdfTemplate is the metadata row of an uploaded PDF template. The binary
// lives in file storage under FilePath; FileName keeps the original upload
// name for display only.
type PdfTemplate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	FileName  string             `bson:"fileName" json:"fileName"`
	FilePath  string             `bson:"filePath" json:"filePath"`
	FileSize  int64              `bson:"fileSize" json:"fileSize"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
