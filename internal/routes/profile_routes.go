package routes

import (
	"github.com/gofiber/fiber/v2"

	"devconnector/internal/controllers"
	"devconnector/internal/middleware"
)

func ProfileRoutes(r fiber.Router, h *controllers.ProfileHandler, v middleware.Verifier) {
	auth := middleware.Protected(v)
	profile := r.Group("/profile")

	profile.Get("/", h.List)
	profile.Get("/user/:userId", h.ByUser)
	profile.Get("/me", append(auth, h.Me)...)
	profile.Post("/", append(auth, h.Upsert)...)
}
