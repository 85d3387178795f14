package controllers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formflow-backend/src/services/templates"
	"formflow-backend/src/utils"
)

// UploadTemplate godoc
// @Summary      Upload a PDF template
// @Description  Upload a PDF file used as the background of generated documents
// @Tags         templates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "PDF file"
// @Param        name formData string false "Display name"
// @Success      201  {object}  models.PdfTemplate
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates [post]
func UploadTemplate(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "No file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to read file: "+err.Error())
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to read file: "+err.Error())
	}

	template, err := templates.UploadTemplate(c.Context(),
		fileBytes,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		c.FormValue("name"),
	)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

// GetTemplates godoc
// @Summary      List PDF templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}  models.PdfTemplate
// @Failure      500  {object}  models.ErrorResponse
// @Router       /templates [get]
func GetTemplates(c *fiber.Ctx) error {
	result, err := templates.GetTemplates(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// GetTemplateByID godoc
// @Summary      Get a template
// @Tags         templates
// @Produce      json
// @Param        id path string true "Template ID"
// @Success      200  {object}  models.PdfTemplate
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id} [get]
func GetTemplateByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	template, err := templates.GetTemplateByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(template)
}

// DownloadTemplateFile godoc
// @Summary      Download the template binary
// @Description  Serve the PDF for the mapping canvas preview
// @Tags         templates
// @Produce      application/pdf
// @Param        id path string true "Template ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id}/file [get]
func DownloadTemplateFile(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	data, err := templates.GetTemplateBytes(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}

// DeleteTemplate godoc
// @Summary      Delete a template
// @Description  Remove the metadata row, its mappings and (best effort) the binary
// @Tags         templates
// @Produce      json
// @Param        id path string true "Template ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /templates/{id} [delete]
func DeleteTemplate(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := templates.DeleteTemplate(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Template deleted successfully"})
}
