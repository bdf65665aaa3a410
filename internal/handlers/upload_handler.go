package handlers

import (
	"github.com/salmanrf/movies-api/internal/services"
	"github.com/salmanrf/movies-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	mediaService *services.MediaService
	logger       *logrus.Logger
}

func NewUploadHandler(mediaService *services.MediaService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// PresignUpload godoc
// @Summary Presign a media upload
// @Description Generate a presigned PUT URL for uploading a movie poster or watchable asset
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param filename query string true "Filename"
// @Success 200 {object} utils.APIResponse "Presigned and public URLs"
// @Failure 400 {object} utils.APIResponse "Missing filename"
// @Router /movies/uploads/presign [get]
func (h *UploadHandler) PresignUpload(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.mediaService.PresignUpload(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to presign upload")
		return err
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
