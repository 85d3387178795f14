package routes

import (
	"formflow-backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func submissionRoutes(router fiber.Router) {
	submissions := router.Group("/submissions")

	submissions.Post("/", controllers.CreateSubmission)
	submissions.Get("/", controllers.GetSubmissions)
	submissions.Get("/:id", controllers.GetSubmissionByID)
	submissions.Get("/:id/download", controllers.DownloadSubmissionPdf)
	submissions.Delete("/:id", controllers.DeleteSubmission)
}
