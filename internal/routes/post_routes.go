package routes

import (
	"github.com/gofiber/fiber/v2"

	"devconnector/internal/controllers"
	"devconnector/internal/middleware"
)

// PostRoutes mounts /posts. Every post route needs a token.
func PostRoutes(r fiber.Router, h *controllers.PostHandler, v middleware.Verifier) {
	posts := r.Group("/posts", middleware.Protected(v)...)

	posts.Post("/", h.Create)
	posts.Get("/", h.List)
	posts.Get("/:id", h.Get)
	posts.Delete("/:id", h.Delete)

	posts.Put("/like/:id", h.Like)
	posts.Put("/unlike/:id", h.Unlike)

	posts.Put("/comment/:id", h.AddComment)
	posts.Delete("/comment/:id/:commentId", h.DeleteComment)
}
