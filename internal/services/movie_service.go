package services

import (
	"context"
	"errors"

	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/models"
	"github.com/salmanrf/movies-api/internal/repository"
	"github.com/salmanrf/movies-api/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateMovieInput struct {
	Title       string
	Duration    int
	Description string
	WatchURL    string
	Artists     []uint
	Genres      []uint
}

// UpdateMovieInput applies partially: nil field pointers leave the
// column unchanged. Nil ID slices leave the association set alone;
// empty non-nil slices clear it.
type UpdateMovieInput struct {
	Title       *string
	Duration    *int
	Description *string
	WatchURL    *string
	Artists     []uint
	Genres      []uint
}

// FindInput carries raw query-string values; pagination and sorting
// fall back to defaults on anything unparseable.
type FindInput struct {
	Title       string
	Description string
	Page        string
	Limit       string
	SortField   string
	SortOrder   string
}

type MovieService interface {
	CreateMovie(ctx context.Context, in CreateMovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, movieID string, in UpdateMovieInput) (*models.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*models.Movie, error)
	FindMovies(ctx context.Context, in FindInput) (*utils.PaginatedResponse, error)

	VoteMovie(ctx context.Context, userID, movieID string) (*models.MovieVote, error)

	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	CreateArtist(ctx context.Context, name string) (*models.Artist, error)
	FindGenres(ctx context.Context, in FindInput) (*utils.PaginatedResponse, error)
	FindArtists(ctx context.Context, in FindInput) (*utils.PaginatedResponse, error)
}

var (
	movieSortFields = map[string]bool{"movie_id": true, "title": true, "created_at": true}
	genreSortFields = map[string]bool{"genre_id": true, "name": true, "created_at": true}
	// The artists table has no title column; name is the sortable one.
	artistSortFields = map[string]bool{"artist_id": true, "name": true, "created_at": true}
)

type movieService struct {
	movieRepo  repository.MovieRepository
	genreRepo  repository.GenreRepository
	artistRepo repository.ArtistRepository
	voteRepo   repository.VoteRepository
	userRepo   repository.UserRepository
	logger     *logrus.Logger
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	artistRepo repository.ArtistRepository,
	voteRepo repository.VoteRepository,
	userRepo repository.UserRepository,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		movieRepo:  movieRepo,
		genreRepo:  genreRepo,
		artistRepo: artistRepo,
		voteRepo:   voteRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, in CreateMovieInput) (*models.Movie, error) {
	if len(in.Artists) == 0 {
		return nil, apperr.BadRequest("Artists must be an array of artist_id")
	}
	if len(in.Genres) == 0 {
		return nil, apperr.BadRequest("Genres must be an array of genre_id")
	}

	movie := &models.Movie{
		MovieID:     uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		WatchURL:    in.WatchURL,
	}

	if err := s.movieRepo.Create(ctx, movie, in.Artists, in.Genres); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, in UpdateMovieInput) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("Movie not found.")
	}

	if in.Title != nil {
		movie.Title = *in.Title
	}
	if in.Description != nil {
		movie.Description = *in.Description
	}
	if in.Duration != nil {
		movie.Duration = *in.Duration
	}
	if in.WatchURL != nil {
		movie.WatchURL = *in.WatchURL
	}

	if err := s.movieRepo.Update(ctx, movie, in.Artists, in.Genres); err != nil {
		return nil, err
	}

	// Re-read so the response carries the replaced genre set and the
	// current vote count.
	return s.movieRepo.FindByID(ctx, movieID)
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("Movie not found.")
	}
	return movie, nil
}

func (s *movieService) FindMovies(ctx context.Context, in FindInput) (*utils.PaginatedResponse, error) {
	p := utils.GetPagination(in.Page, in.Limit)
	sortField, sortOrder := utils.NormalizeSort(in.SortField, in.SortOrder, movieSortFields)

	movies, total, err := s.movieRepo.FindAll(ctx, repository.MovieQuery{
		Title:       in.Title,
		Description: in.Description,
		Pagination:  p,
		SortField:   sortField,
		SortOrder:   sortOrder,
	})
	if err != nil {
		return nil, err
	}

	return utils.GetPaginatedData(movies, total, p, sortField, sortOrder), nil
}

// VoteMovie toggles the caller's vote: an existing row is deleted and
// returned as removal confirmation, a missing one is created. Two
// concurrent toggles for the same pair can collide on the composite
// key; the duplicate insert surfaces as a conflict.
func (s *movieService) VoteMovie(ctx context.Context, userID, movieID string) (*models.MovieVote, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found.")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("invalid user.")
	}

	vote, err := s.voteRepo.FindByPair(ctx, movieID, userID)
	if err != nil {
		return nil, err
	}

	if vote != nil {
		if err := s.voteRepo.Delete(ctx, movieID, userID); err != nil {
			return nil, err
		}
		return vote, nil
	}

	vote = &models.MovieVote{MovieID: movieID, UserID: userID}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("vote already recorded.")
		}
		return nil, err
	}

	return vote, nil
}

func (s *movieService) CreateGenre(ctx context.Context, name string) (*models.Genre, error) {
	genre := &models.Genre{Name: name}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}

	return genre, nil
}

func (s *movieService) CreateArtist(ctx context.Context, name string) (*models.Artist, error) {
	artist := &models.Artist{Name: name}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		s.logger.WithError(err).Error("Failed to create artist")
		return nil, err
	}

	return artist, nil
}

func (s *movieService) FindGenres(ctx context.Context, in FindInput) (*utils.PaginatedResponse, error) {
	p := utils.GetPagination(in.Page, in.Limit)
	sortField, sortOrder := utils.NormalizeSort(in.SortField, in.SortOrder, genreSortFields)

	genres, total, err := s.genreRepo.FindAll(ctx, p, sortField, sortOrder)
	if err != nil {
		return nil, err
	}

	return utils.GetPaginatedData(genres, total, p, sortField, sortOrder), nil
}

func (s *movieService) FindArtists(ctx context.Context, in FindInput) (*utils.PaginatedResponse, error) {
	p := utils.GetPagination(in.Page, in.Limit)
	sortField, sortOrder := utils.NormalizeSort(in.SortField, in.SortOrder, artistSortFields)

	artists, total, err := s.artistRepo.FindAll(ctx, p, sortField, sortOrder)
	if err != nil {
		return nil, err
	}

	return utils.GetPaginatedData(artists, total, p, sortField, sortOrder), nil
}
