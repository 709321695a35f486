package usecases_test

import (
	"archive/zip"
	"context"
	"os"
	"strings"
	"testing"

	"video-clipper/internal/infrastructure/workspace"
	"video-clipper/internal/usecases"
	"video-clipper/pkg/errors"
)

func newClipService(t *testing.T, engine *fakeEngine) (usecases.ClipService, string) {
	t.Helper()
	root := t.TempDir()
	return usecases.NewClipService(workspace.NewManager(root), engine), root
}

func requireEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading scratch root: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("scratch root not empty: %v", names)
	}
}

func requireProcessError(t *testing.T, err error, code string) *errors.ProcessError {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	pe, ok := err.(*errors.ProcessError)
	if !ok {
		t.Fatalf("expected ProcessError, got %T: %v", err, err)
	}
	if pe.Code != code {
		t.Fatalf("unexpected code: got %q want %q", pe.Code, code)
	}
	return pe
}

func TestClipProducesArchiveInPlanOrder(t *testing.T) {
	engine := &fakeEngine{duration: 30}
	svc, root := newClipService(t, engine)

	artifact, scope, err := svc.Clip(context.Background(),
		strings.NewReader("video"), "movie.mp4", "video/mp4",
		`[{"start":5,"end":10},{"start":20,"end":25}]`)
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}
	if artifact.Filename != "movie_clips.zip" {
		t.Fatalf("unexpected archive name: %q", artifact.Filename)
	}
	if artifact.MediaType != "application/zip" {
		t.Fatalf("unexpected media type: %q", artifact.MediaType)
	}

	want := [][2]float64{{5, 10}, {20, 25}}
	if len(engine.subclipCalls) != len(want) {
		t.Fatalf("unexpected subclip call count: got %d want %d", len(engine.subclipCalls), len(want))
	}
	for i, w := range want {
		if engine.subclipCalls[i] != w {
			t.Fatalf("subclip call %d: got %v want %v", i, engine.subclipCalls[i], w)
		}
	}

	zr, err := zip.OpenReader(artifact.Path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	zr.Close()
	if len(names) != 2 || names[0] != "movie_clip_1.mp4" || names[1] != "movie_clip_2.mp4" {
		t.Fatalf("unexpected archive entries: %v", names)
	}

	scope.Cleanup()
	requireEmptyDir(t, root)
}

func TestClipSingleEntryOmitsNumberSuffix(t *testing.T) {
	engine := &fakeEngine{duration: 30}
	svc, root := newClipService(t, engine)

	artifact, scope, err := svc.Clip(context.Background(),
		strings.NewReader("video"), "movie.mp4", "video/mp4", `[{"start":0,"end":30}]`)
	if err != nil {
		t.Fatalf("Clip returned error: %v", err)
	}

	zr, err := zip.OpenReader(artifact.Path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 1 || zr.File[0].Name != "movie_clip.mp4" {
		t.Fatalf("unexpected archive entries: %v", zr.File)
	}

	scope.Cleanup()
	requireEmptyDir(t, root)
}

func TestClipFailureAbortsBatchAndCleansScratch(t *testing.T) {
	engine := &fakeEngine{duration: 60, failAt: 2}
	svc, root := newClipService(t, engine)

	_, _, err := svc.Clip(context.Background(),
		strings.NewReader("video"), "movie.mp4", "video/mp4",
		`[{"start":0,"end":5},{"start":10,"end":15},{"start":20,"end":25}]`)

	pe := requireProcessError(t, err, errors.CodeClipExtraction)
	if !strings.Contains(pe.Message, "clip 2") {
		t.Fatalf("message %q does not name the failing clip", pe.Message)
	}
	// The batch stops at the failure; clip 3 is never attempted.
	if len(engine.subclipCalls) != 2 {
		t.Fatalf("unexpected subclip call count after failure: %d", len(engine.subclipCalls))
	}
	requireEmptyDir(t, root)
}

func TestClipMalformedPlanDoesNoIO(t *testing.T) {
	engine := &fakeEngine{duration: 30}
	svc, root := newClipService(t, engine)

	_, _, err := svc.Clip(context.Background(),
		strings.NewReader("video"), "movie.mp4", "video/mp4", `[{"start":10,"end":5}]`)

	requireProcessError(t, err, errors.CodeMalformedPlan)
	if engine.probeCalls != 0 || len(engine.subclipCalls) != 0 {
		t.Fatalf("engine was invoked for a malformed plan: probes=%d subclips=%d",
			engine.probeCalls, len(engine.subclipCalls))
	}
	requireEmptyDir(t, root)
}

func TestClipRangePastEndOfVideo(t *testing.T) {
	engine := &fakeEngine{duration: 22}
	svc, root := newClipService(t, engine)

	_, _, err := svc.Clip(context.Background(),
		strings.NewReader("video"), "movie.mp4", "video/mp4",
		`[{"start":5,"end":10},{"start":20,"end":25}]`)

	pe := requireProcessError(t, err, errors.CodeRangeExceedsSource)
	for _, want := range []string{"Clip 1", "25", "22.00"} {
		if !strings.Contains(pe.Message, want) {
			t.Fatalf("message %q does not contain %q", pe.Message, want)
		}
	}
	if len(engine.subclipCalls) != 0 {
		t.Fatal("extraction started despite failed duration validation")
	}
	requireEmptyDir(t, root)
}

func TestClipRejectsNonVideoUpload(t *testing.T) {
	engine := &fakeEngine{duration: 30}
	svc, root := newClipService(t, engine)

	_, _, err := svc.Clip(context.Background(),
		strings.NewReader("text"), "notes.txt", "text/plain", `[{"start":0,"end":1}]`)

	requireProcessError(t, err, errors.CodeUnsupportedMediaType)
	requireEmptyDir(t, root)
}

func TestClipProbeFailureCleansScratch(t *testing.T) {
	engine := &fakeEngine{probeErr: errors.ErrEngineFailure(os.ErrDeadlineExceeded)}
	svc, root := newClipService(t, engine)

	_, _, err := svc.Clip(context.Background(),
		strings.NewReader("video"), "movie.mp4", "video/mp4", `[{"start":0,"end":1}]`)

	requireProcessError(t, err, errors.CodeEngineFailure)
	requireEmptyDir(t, root)
}
