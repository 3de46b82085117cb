package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/postal/cards/internal/core/ports"
)

func NewHandler(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	cardHandler *CardHandler,
	tokens ports.TokenService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/sign-up", authHandler.SignUp)
	r.Post("/sign-in", authHandler.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(ParseToken)
		r.Get("/fetch-by-token", userHandler.FetchByToken)
	})

	r.Group(func(r chi.Router) {
		r.Use(ParseAndValidateToken(tokens))
		r.Get("/fetch-by-id-{id}", cardHandler.FetchByID)
		r.Get("/fetch-list", cardHandler.FetchList)
		r.Get("/fetch-all-cards-by-user-id", cardHandler.FetchAllByUserID)
		r.Get("/fetch-all-cards-by-to-user-id", cardHandler.FetchAllByToUserID)
		r.Post("/store", cardHandler.Store)
		r.Patch("/update-by-id-{id}", cardHandler.UpdateByID)
		r.Delete("/delete-by-id-{id}", cardHandler.DeleteByID)
	})

	return r
}
