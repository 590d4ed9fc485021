package wire

import (
	"movie-theater/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/genres", movieHandler.GetGenres)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== ADMIN ROUTES ====================
	// No authentication: the admin screen is open like the rest of the app.
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)       // POST /api/admin/movies
		r.Put("/{id}", movieHandler.UpdateMovie)    // PUT /api/admin/movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/admin/movies/{id}
	})
}
