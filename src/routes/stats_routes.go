package routes

import (
	"formflow-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func statsRoutes(router fiber.Router) {
	stats := router.Group("/stats")

	stats.Get("/", controllers.GetDashboardStats)
}
