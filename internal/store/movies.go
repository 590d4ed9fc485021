package store

import (
	"context"
	"strings"

	"movie-theater/internal/data/entity"

	"go.uber.org/zap"
)

// Movies returns a copy of the movie collection in display order.
func (s *Store) Movies() []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.Clone()
	}
	return out
}

func (s *Store) MovieByID(id string) (entity.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.movieIndex(id); i >= 0 {
		return s.movies[i].Clone(), true
	}
	return entity.Movie{}, false
}

// SearchMovies filters by a case-insensitive title substring and, when genre
// is not empty, by genre. Empty arguments match everything.
func (s *Store) SearchMovies(term, genre string) []entity.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]entity.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if term != "" && !strings.Contains(strings.ToLower(m.Title), term) {
			continue
		}
		if genre != "" && !hasGenre(m, genre) {
			continue
		}
		out = append(out, m.Clone())
	}
	return out
}

func hasGenre(m entity.Movie, genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// Genres lists every distinct genre in order of first appearance.
func (s *Store) Genres() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, m := range s.movies {
		for _, g := range m.Genre {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}

// AddMovie appends movie under a new "m<ms>" id. Any id on the input is
// ignored. Duplicate titles are allowed.
func (s *Store) AddMovie(ctx context.Context, movie entity.Movie) (entity.Movie, error) {
	s.mu.Lock()
	movie = movie.Clone()
	movie.ID = s.ids.next(prefixMovie, s.now(), s.movieExists)
	s.movies = append(s.movies, movie)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Movie added", zap.String("movie_id", movie.ID), zap.String("title", movie.Title))
	s.notify(Change{Collection: CollectionMovies, Op: OpAdd, ID: movie.ID})
	return movie.Clone(), err
}

// UpdateMovie shallow-merges patch into the movie with id.
func (s *Store) UpdateMovie(ctx context.Context, id string, patch entity.MoviePatch) (bool, error) {
	s.mu.Lock()
	if !s.updateMovieLocked(id, patch) {
		s.mu.Unlock()
		return false, nil
	}
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Movie updated", zap.String("movie_id", id))
	s.notify(Change{Collection: CollectionMovies, Op: OpUpdate, ID: id})
	return true, err
}

func (s *Store) updateMovieLocked(id string, patch entity.MoviePatch) bool {
	i := s.movieIndex(id)
	if i < 0 {
		return false
	}
	patch.Apply(&s.movies[i])
	return true
}

// DeleteMovie removes the movie with id. Bookings that reference it keep
// their own copy of title and poster and are left alone.
func (s *Store) DeleteMovie(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := s.movieIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	movies := make([]entity.Movie, 0, len(s.movies)-1)
	movies = append(movies, s.movies[:i]...)
	s.movies = append(movies, s.movies[i+1:]...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Movie deleted", zap.String("movie_id", id))
	s.notify(Change{Collection: CollectionMovies, Op: OpDelete, ID: id})
	return true, err
}

// AddReview appends review to the movie's reviews under a new "r<ms>" id,
// picking a placeholder avatar when none is given. The review list is
// written back through the same path as UpdateMovie.
func (s *Store) AddReview(ctx context.Context, movieID string, review entity.Review) (entity.Review, bool, error) {
	s.mu.Lock()
	i := s.movieIndex(movieID)
	if i < 0 {
		s.mu.Unlock()
		return entity.Review{}, false, nil
	}

	review.ID = s.ids.next(prefixReview, s.now(), s.reviewExists(i))
	if review.Avatar == "" {
		review.Avatar = s.avatar()
	}

	reviews := make([]entity.Review, 0, len(s.movies[i].Reviews)+1)
	reviews = append(reviews, s.movies[i].Reviews...)
	reviews = append(reviews, review)
	s.updateMovieLocked(movieID, entity.MoviePatch{Reviews: &reviews})
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Review added",
		zap.String("movie_id", movieID),
		zap.String("review_id", review.ID),
		zap.Int("rating", review.Rating),
	)
	s.notify(Change{Collection: CollectionMovies, Op: OpUpdate, ID: movieID})
	return review, true, err
}

func (s *Store) movieIndex(id string) int {
	for i := range s.movies {
		if s.movies[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) movieExists(id string) bool {
	return s.movieIndex(id) >= 0
}

func (s *Store) reviewExists(movie int) func(string) bool {
	return func(id string) bool {
		for _, r := range s.movies[movie].Reviews {
			if r.ID == id {
				return true
			}
		}
		return false
	}
}
