package usecases_test

import (
	"context"
	"fmt"
	"os"
	"sync"

	perrs "video-clipper/pkg/errors"
)

// fakeEngine stands in for ffmpeg. It writes small marker files instead of
// real media and can be told to fail the k-th subclip extraction.
type fakeEngine struct {
	duration float64
	probeErr error
	audioErr error
	failAt   int // 1-based subclip call index to fail at, 0 = never

	mu           sync.Mutex
	probeCalls   int
	audioCalls   int
	subclipCalls [][2]float64
}

func (f *fakeEngine) ExtractAudio(ctx context.Context, sourcePath, outputPath string) error {
	f.mu.Lock()
	f.audioCalls++
	f.mu.Unlock()
	if f.audioErr != nil {
		return f.audioErr
	}
	return os.WriteFile(outputPath, []byte("mp3"), 0644)
}

func (f *fakeEngine) ProbeDuration(ctx context.Context, sourcePath string) (float64, error) {
	f.mu.Lock()
	f.probeCalls++
	f.mu.Unlock()
	if f.probeErr != nil {
		return 0, f.probeErr
	}
	return f.duration, nil
}

func (f *fakeEngine) ExtractSubclip(ctx context.Context, sourcePath string, start, end float64, outputPath string) error {
	f.mu.Lock()
	f.subclipCalls = append(f.subclipCalls, [2]float64{start, end})
	call := len(f.subclipCalls)
	f.mu.Unlock()
	if f.failAt != 0 && call == f.failAt {
		return perrs.ErrEngineFailure(fmt.Errorf("simulated engine crash on call %d", call))
	}
	return os.WriteFile(outputPath, []byte(fmt.Sprintf("clip %g-%g", start, end)), 0644)
}

func (f *fakeEngine) Version(ctx context.Context) (string, error) {
	return "fake-engine 1.0", nil
}
