package usecases

import (
	"context"
	"io"
	"log"
	"strings"

	"video-clipper/internal/domain/dto"
	"video-clipper/internal/domain/repositories"
	"video-clipper/internal/infrastructure/workspace"
	consts "video-clipper/pkg/constants"
	"video-clipper/pkg/errors"
	"video-clipper/pkg/file"
)

// ConvertService turns an uploaded video into an MP3 audio file.
type ConvertService interface {
	// Convert returns the produced artifact together with the scratch scope
	// backing it. The caller must run scope.Cleanup() once the artifact has
	// been handed off; on error the scope has already been cleaned up.
	Convert(ctx context.Context, src io.Reader, filename, contentType string) (*dto.MediaArtifact, *workspace.Scope, error)
}

type convertService struct {
	ws     *workspace.Manager
	engine repositories.MediaEngine
}

func NewConvertService(ws *workspace.Manager, engine repositories.MediaEngine) ConvertService {
	return &convertService{ws: ws, engine: engine}
}

func (s *convertService) Convert(ctx context.Context, src io.Reader, filename, contentType string) (*dto.MediaArtifact, *workspace.Scope, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return nil, nil, errors.ErrUnsupportedMediaType()
	}

	scope := s.ws.NewScope()

	sourcePath, err := scope.PersistUpload(src, filename)
	if err != nil {
		scope.Cleanup()
		return nil, nil, errors.ErrInternal(err)
	}

	audioName := file.AudioName(filename)
	outputPath := scope.Allocate(audioName)

	if err := s.engine.ExtractAudio(ctx, sourcePath, outputPath); err != nil {
		scope.Cleanup()
		return nil, nil, errors.ErrConversionFailed(err)
	}
	log.Printf("Converted %s to %s", filename, audioName)

	return &dto.MediaArtifact{
		Path:      outputPath,
		Filename:  audioName,
		MediaType: consts.MediaTypeMP3,
	}, scope, nil
}
