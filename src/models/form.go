package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field types supported by the form builder.
const (
	FieldText      = "text"
	FieldTextarea  = "textarea"
	FieldNumber    = "number"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldURL       = "url"
	FieldDropdown  = "dropdown"
	FieldRadio     = "radio"
	FieldCheckbox  = "checkbox"
	FieldDate      = "date"
	FieldMultidate = "multidate"
	FieldSignature = "signature"
)

// FormField is one field of a form. Name is the data key used by
// submissions and field mappings and must be unique within a form.
type FormField struct {
	ID         string                 `bson:"id" json:"id"`
	Type       string                 `bson:"type" json:"type"`
	Label      string                 `bson:"label" json:"label"`
	Name       string                 `bson:"name" json:"name"`
	Required   bool                   `bson:"required" json:"required"`
	Options    []string               `bson:"options,omitempty" json:"options,omitempty"`
	Validation map[string]interface{} `bson:"validation,omitempty" json:"validation,omitempty"`
	Styling    map[string]interface{} `bson:"styling,omitempty" json:"styling,omitempty"`
}

// --- Form ---
type Form struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name                string              `bson:"name" json:"name" validate:"required"`
	Description         string              `bson:"description,omitempty" json:"description,omitempty"`
	Fields              []FormField         `bson:"fields" json:"fields" validate:"required"`
	IsPublished         bool                `bson:"isPublished" json:"isPublished"`
	PublishURL          string              `bson:"publishUrl,omitempty" json:"publishUrl,omitempty"`
	EmbedCode           string              `bson:"embedCode,omitempty" json:"embedCode,omitempty"`
	ThankYouMessage     string              `bson:"thankYouMessage" json:"thankYouMessage"`
	EnableRedirect      bool                `bson:"enableRedirect" json:"enableRedirect"`
	RedirectURL         string              `bson:"redirectUrl,omitempty" json:"redirectUrl,omitempty" validate:"required_if=EnableRedirect true"`
	EnablePdfGeneration bool                `bson:"enablePdfGeneration" json:"enablePdfGeneration"`
	LinkedTemplateID    *primitive.ObjectID `bson:"linkedTemplateId,omitempty" json:"linkedTemplateId,omitempty"`
	AutoGeneratePdf     bool                `bson:"autoGeneratePdf" json:"autoGeneratePdf"`
	AutoEmailPdf        bool                `bson:"autoEmailPdf" json:"autoEmailPdf"`
	ShowPdfDownload     bool                `bson:"showPdfDownload" json:"showPdfDownload"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// DefaultThankYouMessage is used when the form owner has not set one.
const DefaultThankYouMessage = "Thanks for completing the form! We'll be in touch shortly."

// FormSettings is the subset of form settings the public form page needs to
// render the thank-you experience after a submission.
type FormSettings struct {
	EnablePdfGeneration bool   `json:"enablePdfGeneration"`
	ShowPdfDownload     bool   `json:"showPdfDownload"`
	AutoEmailPdf        bool   `json:"autoEmailPdf"`
	ThankYouMessage     string `json:"thankYouMessage"`
	EnableRedirect      bool   `json:"enableRedirect"`
	RedirectURL         string `json:"redirectUrl,omitempty"`
}

// Settings extracts the public subset of a form's settings.
func (f *Form) Settings() FormSettings {
	return FormSettings{
		EnablePdfGeneration: f.EnablePdfGeneration,
		ShowPdfDownload:     f.ShowPdfDownload,
		AutoEmailPdf:        f.AutoEmailPdf,
		ThankYouMessage:     f.ThankYouMessage,
		EnableRedirect:      f.EnableRedirect,
		RedirectURL:         f.RedirectURL,
	}
}

// FieldByName resolves a field by its data key.
func (f *Form) FieldByName(name string) (FormField, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return FormField{}, false
}
