package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formflow-backend/src/models"
	"formflow-backend/src/services/mappings"
	"formflow-backend/src/utils"
)

// CreateMapping godoc
// @Summary      Create a field mapping
// @Description  Place a form field on a template canvas position
// @Tags         mappings
// @Accept       json
// @Produce      json
// @Param        body body models.CreateMappingRequest true "Mapping"
// @Success      201  {object}  models.FieldMapping
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /mappings [post]
func CreateMapping(c *fiber.Ctx) error {
	var req models.CreateMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	mapping, err := mappings.CreateMapping(c.Context(), &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mapping)
}

// GetMappings godoc
// @Summary      List field mappings
// @Description  List mappings in creation order, optionally filtered by form and template
// @Tags         mappings
// @Produce      json
// @Param        formId     query string false "Form ID"
// @Param        templateId query string false "Template ID"
// @Success      200  {array}  models.FieldMapping
// @Failure      400  {object}  models.ErrorResponse
// @Router       /mappings [get]
func GetMappings(c *fiber.Ctx) error {
	var formID, templateID *primitive.ObjectID

	if hex := c.Query("formId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid formId format")
		}
		formID = &id
	}
	if hex := c.Query("templateId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid templateId format")
		}
		templateID = &id
	}

	result, err := mappings.ListMappings(c.Context(), formID, templateID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// UpdateMapping godoc
// @Summary      Update a field mapping
// @Description  Move or resize a mapping; only the provided fields change
// @Tags         mappings
// @Accept       json
// @Produce      json
// @Param        id   path string true "Mapping ID"
// @Param        body body models.UpdateMappingRequest true "Fields to update"
// @Success      200  {object}  models.FieldMapping
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /mappings/{id} [put]
func UpdateMapping(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req models.UpdateMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	mapping, err := mappings.UpdateMapping(c.Context(), id, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(mapping)
}

// DeleteMapping godoc
// @Summary      Delete a field mapping
// @Tags         mappings
// @Produce      json
// @Param        id path string true "Mapping ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /mappings/{id} [delete]
func DeleteMapping(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := mappings.DeleteMapping(c.Context(), id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Mapping deleted successfully"})
}
