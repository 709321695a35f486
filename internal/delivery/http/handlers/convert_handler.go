package handlers

import (
	"video-clipper/internal/domain/dto"
	"video-clipper/internal/usecases"
	"video-clipper/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type ConvertHandler struct {
	convertService usecases.ConvertService
}

func NewConvertHandler(convertService usecases.ConvertService) *ConvertHandler {
	return &ConvertHandler{convertService: convertService}
}

// Convert
//
// @Summary      Convert Video to MP3
// @Description  Uploads a video file and returns its audio track as MP3 (192 kbps)
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      audio/mpeg
// @Param        file  formData  file  true  "Video file"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse "Not a video upload"
// @Failure      500   {object}  dto.ErrorResponse "Conversion failed"
// @Router       /convert [post]
func (h *ConvertHandler) Convert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "A file field is required",
		})
	}

	upload, err := fileHeader.Open()
	if err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}
	defer upload.Close()

	artifact, scope, err := h.convertService.Convert(
		c.UserContext(), upload, fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return errors.HandleError(c, err)
	}

	return sendArtifact(c, artifact, scope)
}
