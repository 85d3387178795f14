package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formflow-backend/src/models"
	"formflow-backend/src/services/submissions"
	"formflow-backend/src/utils"
)

// CreateSubmission godoc
// @Summary      Submit a form
// @Description  Validate and persist a submission, generating its PDF when the form asks for one
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body body models.CreateSubmissionRequest true "Submission"
// @Success      201  {object}  models.SubmissionResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions [post]
func CreateSubmission(c *fiber.Ctx) error {
	var req models.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := submissions.CreateSubmission(c.Context(), &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetSubmissions godoc
// @Summary      List submissions
// @Description  List submissions newest first, joined with their form's name
// @Tags         submissions
// @Produce      json
// @Param        formId query string false "Form ID"
// @Success      200  {array}  models.SubmissionListItem
// @Failure      400  {object}  models.ErrorResponse
// @Router       /submissions [get]
func GetSubmissions(c *fiber.Ctx) error {
	var formID *primitive.ObjectID
	if hex := c.Query("formId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid formId format")
		}
		formID = &id
	}

	result, err := submissions.GetSubmissions(c.Context(), formID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// GetSubmissionByID godoc
// @Summary      Get a submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.FormSubmission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func GetSubmissionByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	submission, err := submissions.GetSubmissionByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(submission)
}

// DownloadSubmissionPdf godoc
// @Summary      Download a submission's PDF
// @Description  Serve the stored PDF, or render a report-style one on the fly
// @Tags         submissions
// @Produce      application/pdf
// @Param        id path string true "Submission ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id}/download [get]
func DownloadSubmissionPdf(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	data, fileName, err := submissions.DownloadPdf(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(data)
}

// DeleteSubmission godoc
// @Summary      Delete a submission
// @Description  Remove the submission and schedule cleanup of its generated PDF
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [delete]
func DeleteSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := submissions.DeleteSubmission(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
