package controllers

import (
	"github.com/gofiber/fiber/v2"

	"formflow-backend/src/services/submissions"
	"formflow-backend/src/utils"
)

// GetDashboardStats godoc
// @Summary      Dashboard counters
// @Description  Totals for forms, templates and submissions plus per-form submission counts
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.DashboardStats
// @Failure      500  {object}  models.ErrorResponse
// @Router       /stats [get]
func GetDashboardStats(c *fiber.Ctx) error {
	stats, err := submissions.GetDashboardStats(c.Context())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(stats)
}
