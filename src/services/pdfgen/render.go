// Package pdfgen renders submitted form data into PDF documents. It is a
// pure library: given the same template bytes, mappings and data it produces
// the same output, and it knows nothing about the data store.
package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"formflow-backend/src/utils"
)

// Mapping places one field's value on the template's first page, in canvas
// pixels with a top-left origin.
type Mapping struct {
	FieldName string
	X         int
	Y         int
	Width     int
	Height    int
}

// Data is the ordered view of a submission's values the renderer iterates.
// models.SubmissionData satisfies it.
type Data interface {
	Keys() []string
	Get(key string) (interface{}, bool)
}

// creationDate pins the document metadata so identical inputs serialize to
// identical bytes.
var creationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Render produces a PDF from a template, its field mappings and a
// submission's data. With template bytes and mappings present the template
// pages stay an untouched base layer and values are stamped at their mapped
// positions; otherwise a report-style document is synthesized page by page.
func Render(templateBytes []byte, mappings []Mapping, data Data) ([]byte, error) {
	if len(templateBytes) > 0 && len(mappings) > 0 {
		return renderFilled(templateBytes, mappings, data)
	}
	return renderReport(data)
}

func pdfcpuConf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// renderFilled stamps each mapped value onto the template's first page.
// Every mapping is drawn, so a field name mapped twice is stamped twice.
// A mapping whose field has no submitted value stamps nothing.
func renderFilled(templateBytes []byte, mappings []Mapping, data Data) ([]byte, error) {
	conf := pdfcpuConf()

	ctx, err := api.ReadContext(bytes.NewReader(templateBytes), conf)
	if err != nil {
		return nil, utils.NewRenderError(fmt.Errorf("parse template: %w", err))
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, utils.NewRenderError(fmt.Errorf("parse template: %w", err))
	}

	dims, err := ctx.PageDims()
	if err != nil || len(dims) == 0 {
		return nil, utils.NewRenderError(fmt.Errorf("read template page dimensions: %w", err))
	}
	pageHeight := dims[0].Height

	var stamps []*model.Watermark
	for _, m := range mappings {
		value, _ := data.Get(m.FieldName)
		text := Stringify(value)
		if text == "" {
			continue
		}

		desc := fmt.Sprintf(
			"fontname:Helvetica, points:%d, scalefactor:1 abs, position:bl, offset:%d %d, rotation:0, fillcolor:#000000, opacity:1",
			int(FontSize), m.X, int(CanvasToPage(pageHeight, m.Y)))

		wm, err := api.TextWatermark(text, desc, true, false, types.POINTS)
		if err != nil {
			return nil, utils.NewRenderError(fmt.Errorf("stamp %q: %w", m.FieldName, err))
		}
		stamps = append(stamps, wm)
	}

	// All values empty: the filled document is the template itself.
	if len(stamps) == 0 {
		out := make([]byte, len(templateBytes))
		copy(out, templateBytes)
		return out, nil
	}

	var buf bytes.Buffer
	err = api.AddWatermarksSliceMap(bytes.NewReader(templateBytes), &buf, map[int][]*model.Watermark{1: stamps}, conf)
	if err != nil {
		return nil, utils.NewRenderError(err)
	}
	return buf.Bytes(), nil
}

// renderReport synthesizes a "Label: value" document from the data entries
// in insertion order, breaking to a fresh page whenever the next baseline
// would pass the bottom margin.
func renderReport(data Data) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: DefaultPageWidth, Ht: DefaultPageHeight},
	})
	pdf.SetCreationDate(creationDate)
	pdf.SetModificationDate(creationDate)
	pdf.SetAutoPageBreak(false, 0)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", TitleFontSize)
	pdf.Text(LabelX, TopMargin, "Form Submission")
	pdf.SetFont("Helvetica", "", FontSize)

	y := TopMargin + 50.0
	if data != nil {
		for _, key := range data.Keys() {
			if y > DefaultPageHeight-BottomMargin {
				pdf.AddPage()
				y = TopMargin
			}
			value, _ := data.Get(key)
			pdf.Text(LabelX, y, HumanizeLabel(key)+":")
			pdf.Text(ValueX, y, Stringify(value))
			y += LineHeight
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, utils.NewRenderError(err)
	}
	return buf.Bytes(), nil
}

// ValidatePDF checks that the bytes parse as a PDF document. The template
// registry runs this on upload so a mislabeled file never enters storage.
func ValidatePDF(b []byte) error {
	ctx, err := api.ReadContext(bytes.NewReader(b), pdfcpuConf())
	if err != nil {
		return err
	}
	return ctx.EnsurePageCount()
}

// PageCount reports the number of pages of a rendered document.
func PageCount(b []byte) (int, error) {
	ctx, err := api.ReadContext(bytes.NewReader(b), pdfcpuConf())
	if err != nil {
		return 0, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}
