package routes

import (
	"github.com/salmanrf/movies-api/internal/config"
	"github.com/salmanrf/movies-api/internal/handlers"
	"github.com/salmanrf/movies-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	adminHandler *handlers.AdminHandler,
	userHandler *handlers.UserHandler,
	movieHandler *handlers.MovieHandler,
	uploadHandler *handlers.UploadHandler,
) {
	requireAdmin := middleware.RequireAdmin(cfg.Auth.AdminSecret)
	requireUser := middleware.RequireUser(cfg.Auth.UserSecret)

	api := app.Group("/api")

	admins := api.Group("/admins")
	{
		admins.Post("/login", adminHandler.Login)
		admins.Post("/", adminHandler.Create)
		admins.Get("/:admin_id", adminHandler.FindOne)
	}

	users := api.Group("/users")
	{
		users.Post("/register", userHandler.Register)
		users.Post("/login", userHandler.Login)
		users.Get("/self", requireUser, userHandler.GetSelf)
	}

	// Static segments before the :movie_id wildcard
	movies := api.Group("/movies")
	{
		movies.Post("/genres", requireAdmin, movieHandler.CreateGenre)
		movies.Post("/artists", requireAdmin, movieHandler.CreateArtist)
		movies.Post("/", requireAdmin, movieHandler.Create)

		movies.Get("/genres", movieHandler.FindGenres)
		movies.Get("/artists", movieHandler.FindArtists)
		movies.Get("/uploads/presign", requireAdmin, uploadHandler.PresignUpload)
		movies.Get("/:movie_id", movieHandler.FindOne)
		movies.Get("/", movieHandler.FindMovies)

		movies.Put("/:movie_id", requireAdmin, movieHandler.Update)

		movies.Patch("/:movie_id/vote", requireUser, movieHandler.Vote)
	}
}
