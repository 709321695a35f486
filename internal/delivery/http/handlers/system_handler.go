package handlers

import (
	"video-clipper/internal/domain/dto"
	consts "video-clipper/pkg/constants"

	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Root
//
// @Summary      Service Description
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.RootResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message: "Video to Audio Converter API",
		Endpoints: map[string]string{
			"POST /convert": "Upload a video file and convert it to MP3",
			"POST /clip":    "Upload a video file and clip it at specified start/end points",
			"GET /health":   "Check API health status",
		},
	})
}

// Health
//
// @Summary      Health Check
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: consts.StatusHealthy})
}
