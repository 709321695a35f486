package workspace

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"video-clipper/pkg/file"
)

// Manager hands out per-request scratch scopes under a shared root. Scopes of
// concurrent requests never collide because every scope prefixes its paths
// with a fresh UUID.
type Manager struct {
	root string
}

func NewManager(root string) *Manager {
	return &Manager{root: root}
}

func (m *Manager) Root() string {
	return m.root
}

// NewScope opens a scratch scope for one request.
func (m *Manager) NewScope() *Scope {
	return &Scope{root: m.root, id: uuid.NewString()}
}

// Scope tracks every scratch path allocated during one request and removes
// them all exactly once when Cleanup is called.
type Scope struct {
	root string
	id   string

	mu    sync.Mutex
	paths []string
	done  bool
}

// Allocate returns a fresh, collision-free path inside the scratch root and
// records it for cleanup. The file itself is not created; callers populate it.
func (s *Scope) Allocate(name string) string {
	p := filepath.Join(s.root, fmt.Sprintf("%s_%s", s.id, name))
	s.Register(p)
	return p
}

// Register adds an externally-created path to the cleanup set.
func (s *Scope) Register(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
}

// PersistUpload writes the upload body to a freshly allocated scratch file.
// The path is registered for cleanup before the first byte is written.
func (s *Scope) PersistUpload(src io.Reader, filename string) (string, error) {
	dst := s.Allocate("source" + file.SourceExt(filename))

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("could not create scratch file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("could not persist upload: %w", err)
	}
	if err := out.Sync(); err != nil {
		return "", fmt.Errorf("could not flush upload: %w", err)
	}
	return dst, nil
}

// Cleanup removes every registered path, best effort. Safe to call more than
// once and on paths that were never actually created; individual deletion
// failures are logged so one bad path never blocks the rest.
func (s *Scope) Cleanup() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	paths := s.paths
	s.mu.Unlock()

	for _, p := range paths {
		if err := os.RemoveAll(p); err != nil {
			log.Printf("Could not remove scratch path %s: %v", p, err)
		}
	}
}
