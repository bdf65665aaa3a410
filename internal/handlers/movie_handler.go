package handlers

import (
	"github.com/salmanrf/movies-api/internal/apperr"
	"github.com/salmanrf/movies-api/internal/middleware"
	"github.com/salmanrf/movies-api/internal/services"
	"github.com/salmanrf/movies-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// FindMovies godoc
// @Summary List movies
// @Description Paginated movie listing with title/description filters, genres, and vote counts
// @Tags movies
// @Produce json
// @Param title query string false "Title substring (case-insensitive)"
// @Param description query string false "Description substring (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sort_field query string false "Sort field (movie_id, title, created_at)" default(created_at)
// @Param sort_order query string false "Sort order (ASC/DESC)" default(DESC)
// @Success 200 {object} utils.APIResponse "Paginated movies"
// @Router /movies [get]
func (h *MovieHandler) FindMovies(c *fiber.Ctx) error {
	result, err := h.service.FindMovies(c.Context(), services.FindInput{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Page:        c.Query("page"),
		Limit:       c.Query("limit"),
		SortField:   c.Query("sort_field"),
		SortOrder:   c.Query("sort_order"),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to find movies")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// FindOne godoc
// @Summary Get a movie
// @Description Single movie with its genres and vote count
// @Tags movies
// @Produce json
// @Param movie_id path string true "Movie ID"
// @Success 200 {object} utils.APIResponse "Movie detail"
// @Failure 404 {object} utils.APIResponse "Movie not found"
// @Router /movies/{movie_id} [get]
func (h *MovieHandler) FindOne(c *fiber.Ctx) error {
	movie, err := h.service.GetMovie(c.Context(), c.Params("movie_id"))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// Create godoc
// @Summary Create a movie
// @Description Create a movie with its initial artist and genre associations
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie body CreateMovieRequest true "Movie"
// @Success 201 {object} utils.APIResponse "Created movie"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /movies [post]
func (h *MovieHandler) Create(c *fiber.Ctx) error {
	var req CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.CreateMovie(c.Context(), services.CreateMovieInput{
		Title:       req.Title,
		Duration:    req.Duration,
		Description: req.Description,
		WatchURL:    req.WatchURL,
		Artists:     req.Artists,
		Genres:      req.Genres,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

// Update godoc
// @Summary Update a movie
// @Description Partial update; artist/genre arrays replace the association sets wholesale
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param movie_id path string true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse "Updated movie"
// @Failure 404 {object} utils.APIResponse "Movie not found"
// @Router /movies/{movie_id} [put]
func (h *MovieHandler) Update(c *fiber.Ctx) error {
	var req UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.UpdateMovie(c.Context(), c.Params("movie_id"), services.UpdateMovieInput{
		Title:       req.Title,
		Duration:    req.Duration,
		Description: req.Description,
		WatchURL:    req.WatchURL,
		Artists:     req.Artists,
		Genres:      req.Genres,
	})
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", c.Params("movie_id")).Error("Failed to update movie")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// Vote godoc
// @Summary Toggle a vote
// @Description Creates the caller's vote for the movie, or removes it when already present
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param movie_id path string true "Movie ID"
// @Success 201 {object} utils.APIResponse "Vote toggled"
// @Failure 404 {object} utils.APIResponse "Movie or user not found"
// @Router /movies/{movie_id}/vote [patch]
func (h *MovieHandler) Vote(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil || claims.UserID == "" {
		return apperr.Unauthorized("Unauthorized")
	}

	vote, err := h.service.VoteMovie(c.Context(), claims.UserID, c.Params("movie_id"))
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, vote)
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param genre body CreateNameRequest true "Genre"
// @Success 201 {object} utils.APIResponse "Created genre"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Router /movies/genres [post]
func (h *MovieHandler) CreateGenre(c *fiber.Ctx) error {
	var req CreateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	genre, err := h.service.CreateGenre(c.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create genre")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, genre)
}

// CreateArtist godoc
// @Summary Create an artist
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artist body CreateNameRequest true "Artist"
// @Success 201 {object} utils.APIResponse "Created artist"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Router /movies/artists [post]
func (h *MovieHandler) CreateArtist(c *fiber.Ctx) error {
	var req CreateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	artist, err := h.service.CreateArtist(c.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create artist")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, artist)
}

// FindGenres godoc
// @Summary List genres
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sort_field query string false "Sort field (genre_id, name, created_at)" default(created_at)
// @Param sort_order query string false "Sort order (ASC/DESC)" default(DESC)
// @Success 200 {object} utils.APIResponse "Paginated genres"
// @Router /movies/genres [get]
func (h *MovieHandler) FindGenres(c *fiber.Ctx) error {
	result, err := h.service.FindGenres(c.Context(), services.FindInput{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortField: c.Query("sort_field"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to find genres")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// FindArtists godoc
// @Summary List artists
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sort_field query string false "Sort field (artist_id, name, created_at)" default(created_at)
// @Param sort_order query string false "Sort order (ASC/DESC)" default(DESC)
// @Success 200 {object} utils.APIResponse "Paginated artists"
// @Router /movies/artists [get]
func (h *MovieHandler) FindArtists(c *fiber.Ctx) error {
	result, err := h.service.FindArtists(c.Context(), services.FindInput{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortField: c.Query("sort_field"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to find artists")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
