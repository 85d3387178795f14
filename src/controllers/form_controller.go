package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formflow-backend/src/models"
	"formflow-backend/src/services/forms"
	"formflow-backend/src/utils"
)

// CreateForm godoc
// @Summary      Create a new form
// @Description  Save a form definition from the builder
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.Form true "Form definition"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	var form models.Form
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := forms.CreateForm(c.Context(), &form)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetAllForms godoc
// @Summary      List forms
// @Tags         forms
// @Produce      json
// @Success      200  {array}  models.Form
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func GetAllForms(c *fiber.Ctx) error {
	result, err := forms.GetForms(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// GetFormByID godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.GetFormByID(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.Form true "Form definition"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var form models.Form
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := forms.UpdateForm(c.Context(), id, &form)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(updated)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Delete a form and cascade to its mappings and submissions
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := forms.DeleteForm(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Form deleted successfully"})
}

// PublishForm godoc
// @Summary      Publish a form
// @Description  Make the form public and assign its URL and embed code
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/publish [post]
func PublishForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.PublishForm(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}

// UnpublishForm godoc
// @Summary      Unpublish a form
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/unpublish [post]
func UnpublishForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.UnpublishForm(c.Context(), id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(form)
}
