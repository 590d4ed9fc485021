package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/dto/request"
	"movie-theater/internal/dto/response"
	"movie-theater/internal/store"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

// Admin form defaults for fields left blank.
const (
	defaultPoster        = "https://images.unsplash.com/photo-1536440136628-849c177e76a1?q=80&w=600&auto=format&fit=crop"
	defaultLanguage      = "English"
	defaultDirectorImage = "https://randomuser.me/api/portraits/men/2.jpg"
)

type MovieService interface {
	// Public endpoints
	ListMovies(ctx context.Context, req request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovie(ctx context.Context, id string) (*response.MovieDetailResponse, error)
	GetGenres(ctx context.Context) []string

	// Admin endpoints
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error)
	UpdateMovie(ctx context.Context, id string, req *request.MovieUpdateRequest) (*entity.Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type movieService struct {
	store  *store.Store
	avatar func() string
	log    *zap.Logger
}

func NewMovieService(st *store.Store, log *zap.Logger) MovieService {
	return &movieService{
		store:  st,
		avatar: utils.RandomPortrait,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies := s.store.SearchMovies(req.Search, req.Genre)

	page := utils.Paginate(movies, req.Offset(), req.Size())
	items := make([]response.MovieResponse, len(page))
	for i, m := range page {
		items[i] = response.MovieToResponse(m)
	}

	s.log.Debug("Movies listed",
		zap.String("search", req.Search),
		zap.String("genre", req.Genre),
		zap.Int("total", len(movies)),
	)

	return response.NewPaginatedResponse(items, req.Number(), req.Size(), int64(len(movies))), nil
}

func (s *movieService) GetMovie(ctx context.Context, id string) (*response.MovieDetailResponse, error) {
	movie, ok := s.store.MovieByID(id)
	if !ok {
		return nil, fmt.Errorf("get movie %s: %w", id, ErrMovieNotFound)
	}

	resp := response.MovieToDetailResponse(movie)
	return &resp, nil
}

func (s *movieService) GetGenres(ctx context.Context) []string {
	genres := s.store.Genres()
	if genres == nil {
		return []string{}
	}
	return genres
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	movie := entity.Movie{
		Title:         strings.TrimSpace(req.Title),
		Poster:        orDefault(req.Poster, defaultPoster),
		Genre:         cleanGenres(req.Genre),
		Language:      orDefault(req.Language, defaultLanguage),
		Duration:      req.Duration,
		ReleaseDate:   orDefault(req.ReleaseDate, time.Now().Format("2006-01-02")),
		Rating:        req.Rating,
		Description:   req.Description,
		Cast:          s.cleanCast(req.Cast),
		Director:      req.Director,
		DirectorImage: orDefault(req.DirectorImage, defaultDirectorImage),
	}

	created, err := s.store.AddMovie(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created", zap.String("movie_id", created.ID), zap.String("title", created.Title))
	return &created, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id string, req *request.MovieUpdateRequest) (*entity.Movie, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	patch := entity.MoviePatch{
		Title:         req.Title,
		Poster:        req.Poster,
		Language:      req.Language,
		Duration:      req.Duration,
		ReleaseDate:   req.ReleaseDate,
		Rating:        req.Rating,
		Description:   req.Description,
		Director:      req.Director,
		DirectorImage: req.DirectorImage,
	}
	if req.Genre != nil {
		patch.Genre = utils.Ptr(cleanGenres(*req.Genre))
	}
	if req.Cast != nil {
		patch.Cast = utils.Ptr(s.cleanCast(*req.Cast))
	}

	found, err := s.store.UpdateMovie(ctx, id, patch)
	if !found {
		return nil, fmt.Errorf("update movie %s: %w", id, ErrMovieNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update movie %s: %w", id, err)
	}

	movie, _ := s.store.MovieByID(id)
	s.log.Info("Movie updated", zap.String("movie_id", id))
	return &movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id string) error {
	found, err := s.store.DeleteMovie(ctx, id)
	if !found {
		return fmt.Errorf("delete movie %s: %w", id, ErrMovieNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete movie %s: %w", id, err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id))
	return nil
}

// ==================== FORM CLEANUP ====================

func cleanGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// cleanCast drops rows missing a name or role and fills empty images with a
// placeholder portrait.
func (s *movieService) cleanCast(cast []request.CastMemberRequest) []entity.CastMember {
	out := make([]entity.CastMember, 0, len(cast))
	for _, c := range cast {
		name, role := strings.TrimSpace(c.Name), strings.TrimSpace(c.Role)
		if name == "" || role == "" {
			continue
		}
		image := c.Image
		if image == "" {
			image = s.avatar()
		}
		out = append(out, entity.CastMember{Name: name, Role: role, Image: image})
	}
	return out
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
