package handlers

import (
	"fmt"
	"math"
	"os"

	"video-clipper/internal/domain/dto"
	"video-clipper/internal/infrastructure/workspace"
	"video-clipper/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// sendArtifact streams a scratch-backed artifact as an attachment and then
// releases its scratch scope. The scope is cleaned up while the file is still
// open: unlinking does not invalidate the handle, so the bytes stay readable
// until the server closes the stream after the last byte is sent.
func sendArtifact(c *fiber.Ctx, artifact *dto.MediaArtifact, scope *workspace.Scope) error {
	f, err := os.Open(artifact.Path)
	if err != nil {
		scope.Cleanup()
		return errors.HandleError(c, errors.ErrOutputMissing(artifact.Filename))
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		scope.Cleanup()
		return errors.HandleError(c, errors.ErrInternal(err))
	}

	scope.Cleanup()

	c.Set(fiber.HeaderContentType, artifact.MediaType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.SendStream(f, streamSize(info.Size()))
}

// streamSize converts a file size for SendStream. Sizes that do not fit in
// int (32-bit builds, artifacts over 2 GiB) stream with unknown length
// instead of a truncated one.
func streamSize(n int64) int {
	if n > math.MaxInt {
		return -1
	}
	return int(n)
}
