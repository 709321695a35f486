package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"video-clipper/internal/infrastructure/workspace"
)

// CleanupService sweeps orphaned scratch entries left behind by crashed or
// interrupted requests. Per-request cleanup normally empties the scratch
// root; the sweep is a safety net, not part of the request path.
type CleanupService interface {
	SweepAged(maxAge time.Duration) error
}

type cleanupService struct {
	ws *workspace.Manager
}

func NewCleanupService(ws *workspace.Manager) CleanupService {
	return &cleanupService{ws: ws}
}

func (s *cleanupService) SweepAged(maxAge time.Duration) error {
	root := s.ws.Root()
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range dirEntries {
		path := filepath.Join(root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			log.Printf("Could not stat scratch entry %s: %v", path, err)
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			log.Printf("Could not remove aged scratch entry %s: %v", path, err)
			continue
		}
		log.Printf("Removed aged scratch entry: %s", path)
	}
	return nil
}
