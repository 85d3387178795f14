package routes

import (
	"formflow-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func templateRoutes(router fiber.Router) {
	templates := router.Group("/templates")

	templates.Post("/", controllers.UploadTemplate)
	templates.Get("/", controllers.GetTemplates)
	templates.Get("/:id", controllers.GetTemplateByID)
	templates.Get("/:id/file", controllers.DownloadTemplateFile)
	templates.Delete("/:id", controllers.DeleteTemplate)
}
