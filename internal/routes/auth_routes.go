package routes

import (
	"github.com/gofiber/fiber/v2"

	"devconnector/internal/controllers"
	"devconnector/internal/middleware"
)

func AuthRoutes(r fiber.Router, h *controllers.AuthHandler, v middleware.Verifier) {
	r.Post("/users", h.Register)

	r.Post("/auth", h.Login)
	r.Get("/auth", append(middleware.Protected(v), h.Me)...)
}
