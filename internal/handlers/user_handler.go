package handlers

import (
	"github.com/salmanrf/movies-api/internal/middleware"
	"github.com/salmanrf/movies-api/internal/services"
	"github.com/salmanrf/movies-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration"
// @Success 201 {object} utils.APIResponse "Created user"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Router /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Context(), services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to register user")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse "Access token"
// @Failure 400 {object} utils.APIResponse "Invalid email/password"
// @Router /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	setAccessTokenCookie(c, token)

	return utils.SuccessMessageResponse(c, fiber.StatusOK, "Success", fiber.Map{
		"access_token": token,
	})
}

// GetSelf godoc
// @Summary Current user claims
// @Description Returns the decoded claims of the presented token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 201 {object} utils.APIResponse "Decoded claims"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /users/self [get]
func (h *UserHandler) GetSelf(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)

	return utils.SuccessResponse(c, fiber.StatusCreated, claims)
}
