package router

import (
	"log/slog"
	"net/http"
	"time"

	"hotelBooker/internal/http-server/handlers/hotel/bookRoom"
	"hotelBooker/internal/http-server/middleware/mwlogger"
	"hotelBooker/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func New(log *slog.Logger, validator bookRoom.BookingValidator, now func() time.Time) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("not found"))
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("method not allowed"))
	})

	router.Route("/api/v1/hotel", func(r chi.Router) {
		r.Post("/book", bookRoom.New(log, validator, now))
	})

	return router
}
