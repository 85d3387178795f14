package routes

import (
	"formflow-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")

	forms.Post("/", controllers.CreateForm)
	forms.Get("/", controllers.GetAllForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Put("/:id", controllers.UpdateForm)
	forms.Patch("/:id", controllers.UpdateForm)
	forms.Delete("/:id", controllers.DeleteForm)
	forms.Post("/:id/publish", controllers.PublishForm)
	forms.Post("/:id/unpublish", controllers.UnpublishForm)
}
