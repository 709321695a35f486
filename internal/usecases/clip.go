package usecases

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"video-clipper/internal/domain/dto"
	"video-clipper/internal/domain/entities"
	"video-clipper/internal/domain/repositories"
	"video-clipper/internal/infrastructure/workspace"
	"video-clipper/internal/pkg/archive"
	consts "video-clipper/pkg/constants"
	"video-clipper/pkg/errors"
	"video-clipper/pkg/file"
)

// ClipService cuts an uploaded video into the requested sub-clips and bundles
// them into a single ZIP archive. The batch is all-or-nothing: a ZIP missing
// an expected entry is worse than an explicit error, so any single clip
// failure voids the whole request.
type ClipService interface {
	// Clip returns the archive artifact together with the scratch scope
	// backing it. The caller must run scope.Cleanup() once the artifact has
	// been handed off; on error the scope has already been cleaned up.
	Clip(ctx context.Context, src io.Reader, filename, contentType, rawPlan string) (*dto.MediaArtifact, *workspace.Scope, error)
}

type clipService struct {
	ws     *workspace.Manager
	engine repositories.MediaEngine
}

func NewClipService(ws *workspace.Manager, engine repositories.MediaEngine) ClipService {
	return &clipService{ws: ws, engine: engine}
}

func (s *clipService) Clip(ctx context.Context, src io.Reader, filename, contentType, rawPlan string) (*dto.MediaArtifact, *workspace.Scope, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return nil, nil, errors.ErrUnsupportedMediaType()
	}

	// Structural validation happens before any file I/O so a malformed plan
	// costs nothing.
	plan, err := entities.ParseClipPlan(rawPlan)
	if err != nil {
		return nil, nil, err
	}

	scope := s.ws.NewScope()

	sourcePath, err := scope.PersistUpload(src, filename)
	if err != nil {
		scope.Cleanup()
		return nil, nil, errors.ErrInternal(err)
	}

	duration, err := s.engine.ProbeDuration(ctx, sourcePath)
	if err != nil {
		scope.Cleanup()
		return nil, nil, err
	}
	log.Printf("Video loaded: duration %.2f seconds", duration)

	if err := plan.ValidateAgainstDuration(duration); err != nil {
		scope.Cleanup()
		return nil, nil, err
	}

	base := file.BaseName(filename, "video")

	// Clips are produced strictly in plan order; extraction of entry i+1
	// does not start until entry i's output is confirmed on disk.
	entries := make([]archive.Entry, 0, len(plan))
	for i, r := range plan {
		log.Printf("Creating clip %d: start=%.2fs end=%.2fs", i+1, r.Start, r.End)

		clipName := file.ClipName(base, i+1, len(plan))
		clipPath := scope.Allocate(clipName)

		if err := s.engine.ExtractSubclip(ctx, sourcePath, r.Start, r.End, clipPath); err != nil {
			scope.Cleanup()
			return nil, nil, errors.ErrClipExtraction(i+1, err)
		}
		entries = append(entries, archive.Entry{Path: clipPath, Name: clipName})
	}

	zipName := file.ZipName(base)
	zipPath := scope.Allocate(zipName)

	if err := archive.BuildZip(zipPath, entries); err != nil {
		scope.Cleanup()
		return nil, nil, errors.ErrArchiveCreation(err)
	}
	if _, err := os.Stat(zipPath); err != nil {
		scope.Cleanup()
		return nil, nil, errors.ErrArchiveCreation(err)
	}
	log.Printf("Created archive %s with %d clips", zipName, len(entries))

	return &dto.MediaArtifact{
		Path:      zipPath,
		Filename:  zipName,
		MediaType: consts.MediaTypeZip,
	}, scope, nil
}
