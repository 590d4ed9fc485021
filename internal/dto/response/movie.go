package response

import "movie-theater/internal/data/entity"

// MovieResponse is a movie card on the listing page.
type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster"`
	Genre       []string `json:"genre"`
	Language    string   `json:"language"`
	Duration    string   `json:"duration"`
	ReleaseDate string   `json:"releaseDate"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

type MovieDetailResponse struct {
	entity.Movie
	ReviewCount int `json:"reviewCount"`
}

func MovieToResponse(movie entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Poster:      movie.Poster,
		Genre:       movie.Genre,
		Language:    movie.Language,
		Duration:    movie.Duration,
		ReleaseDate: movie.ReleaseDate,
		Rating:      movie.Rating,
		ReviewCount: len(movie.Reviews),
	}
}

func MovieToDetailResponse(movie entity.Movie) MovieDetailResponse {
	return MovieDetailResponse{
		Movie:       movie,
		ReviewCount: len(movie.Reviews),
	}
}
