package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleError renders a ProcessError as the API's {"detail": ...} error body.
// Client-caused conditions map to 400, everything else to 500.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if pe, ok := err.(*ProcessError); ok {
		if pe.Err != nil {
			log.Printf("Processing error [%s]: %v", pe.Code, pe.Err)
		}

		var status int
		switch pe.Code {
		case CodeUnsupportedMediaType, CodeMalformedPlan, CodeRangeExceedsSource:
			status = fiber.StatusBadRequest
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"detail": pe.Message,
		})
	}

	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "Internal server error",
	})
}
