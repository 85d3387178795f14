package routes

import (
	"formflow-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func mappingRoutes(router fiber.Router) {
	mappings := router.Group("/mappings")

	mappings.Post("/", controllers.CreateMapping)
	mappings.Get("/", controllers.GetMappings)
	mappings.Put("/:id", controllers.UpdateMapping)
	mappings.Delete("/:id", controllers.DeleteMapping)
}
