package handlers

import (
	"time"

	"github.com/salmanrf/movies-api/internal/services"
	"github.com/salmanrf/movies-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Session cookie lifetime, matched to the token TTL.
const accessTokenCookieTTL = 72 * time.Hour

type AdminHandler struct {
	service services.AdminService
	logger  *logrus.Logger
}

func NewAdminHandler(service services.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

// Create godoc
// @Summary Create an admin
// @Description Register a new admin account
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body RegisterRequest true "Admin registration"
// @Success 201 {object} utils.APIResponse "Created admin"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Router /admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	admin, err := h.service.Create(c.Context(), services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create admin")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, admin)
}

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin and issue a session token
// @Tags admins
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse "Access token"
// @Failure 400 {object} utils.APIResponse "Invalid email/password"
// @Router /admins/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
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

// FindOne godoc
// @Summary Get an admin
// @Tags admins
// @Produce json
// @Param admin_id path string true "Admin ID"
// @Success 200 {object} utils.APIResponse
// @Router /admins/{admin_id} [get]
func (h *AdminHandler) FindOne(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "an admin")
}

func setAccessTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(accessTokenCookieTTL),
	})
}
