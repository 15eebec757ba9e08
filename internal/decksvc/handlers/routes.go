package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Get("/health", h.HealthHandler)
		r.Post("/auth/register", h.RegisterHandler)
		r.Post("/auth/login", h.LoginHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Post("/profiles", h.CreateProfileHandler)
			r.Get("/profiles/me", h.GetProfileHandler)
			r.Patch("/profiles/me", h.UpdateProfileHandler)
			r.Get("/profiles/me/stats", h.StatsHandler)

			r.Post("/deck/reshuffle", h.ReshuffleHandler)
			r.Post("/plays", h.PlayCardHandler)

			r.Get("/feed", h.FeedHandler)
			r.Post("/feed/{id}/like", h.LikeHandler)
			r.Post("/feed/{id}/comments", h.CommentHandler)
			r.Get("/stories", h.StoriesHandler)
		})
	})
}
