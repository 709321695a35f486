package handlers

import (
	"video-clipper/internal/domain/dto"
	"video-clipper/internal/usecases"
	"video-clipper/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type ClipHandler struct {
	clipService usecases.ClipService
}

func NewClipHandler(clipService usecases.ClipService) *ClipHandler {
	return &ClipHandler{clipService: clipService}
}

// Clip
//
// @Summary      Cut Video into Clips
// @Description  Uploads a video file and cuts it at the given start/end points, returning all clips as a ZIP. Format: [{"start": 10, "end": 20}, {"start": 30, "end": 40}], times in seconds.
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      application/zip
// @Param        file   formData  file    true  "Video file"
// @Param        clips  formData  string  true  "JSON array of {start, end} ranges"
// @Success      200    {file}    binary
// @Failure      400    {object}  dto.ErrorResponse "Not a video upload, invalid plan, or range past end of video"
// @Failure      500    {object}  dto.ErrorResponse "Extraction or archival failed"
// @Router       /clip [post]
func (h *ClipHandler) Clip(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "A file field is required",
		})
	}

	rawPlan := c.FormValue("clips")
	if rawPlan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "A clips field is required",
		})
	}

	upload, err := fileHeader.Open()
	if err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}
	defer upload.Close()

	artifact, scope, err := h.clipService.Clip(
		c.UserContext(), upload, fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), rawPlan)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return sendArtifact(c, artifact, scope)
}
