package usecases_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"video-clipper/internal/infrastructure/workspace"
	"video-clipper/internal/usecases"
	"video-clipper/pkg/errors"
)

func newConvertService(t *testing.T, engine *fakeEngine) (usecases.ConvertService, string) {
	t.Helper()
	root := t.TempDir()
	return usecases.NewConvertService(workspace.NewManager(root), engine), root
}

func TestConvertProducesMP3Artifact(t *testing.T) {
	engine := &fakeEngine{}
	svc, root := newConvertService(t, engine)

	artifact, scope, err := svc.Convert(context.Background(),
		strings.NewReader("video"), "talk.mov", "video/quicktime")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if artifact.Filename != "talk.mp3" {
		t.Fatalf("unexpected filename: %q", artifact.Filename)
	}
	if artifact.MediaType != "audio/mpeg" {
		t.Fatalf("unexpected media type: %q", artifact.MediaType)
	}
	if engine.audioCalls != 1 {
		t.Fatalf("unexpected audio call count: %d", engine.audioCalls)
	}
	if _, err := os.Stat(artifact.Path); err != nil {
		t.Fatalf("artifact missing on disk: %v", err)
	}

	scope.Cleanup()
	requireEmptyDir(t, root)
}

func TestConvertFallsBackToOutputName(t *testing.T) {
	engine := &fakeEngine{}
	svc, _ := newConvertService(t, engine)

	artifact, scope, err := svc.Convert(context.Background(),
		strings.NewReader("video"), "", "video/mp4")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	defer scope.Cleanup()

	if artifact.Filename != "output.mp3" {
		t.Fatalf("unexpected fallback filename: %q", artifact.Filename)
	}
}

func TestConvertRejectsNonVideoUpload(t *testing.T) {
	engine := &fakeEngine{}
	svc, root := newConvertService(t, engine)

	_, _, err := svc.Convert(context.Background(),
		strings.NewReader("text"), "notes.txt", "text/plain")

	requireProcessError(t, err, errors.CodeUnsupportedMediaType)
	if engine.audioCalls != 0 {
		t.Fatal("engine was invoked for a non-video upload")
	}
	requireEmptyDir(t, root)
}

func TestConvertEngineFailureCleansScratch(t *testing.T) {
	engine := &fakeEngine{audioErr: errors.ErrEngineFailure(os.ErrNotExist)}
	svc, root := newConvertService(t, engine)

	_, _, err := svc.Convert(context.Background(),
		strings.NewReader("video"), "talk.mp4", "video/mp4")

	requireProcessError(t, err, errors.CodeConversionFailed)
	requireEmptyDir(t, root)
}
