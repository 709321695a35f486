package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// Entry is one file to bundle, stored under Name inside the archive.
type Entry struct {
	Path string
	Name string
}

// BuildZip writes all entries, in order, into a deflate-compressed archive at
// outPath.
func BuildZip(outPath string, entries []Entry) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, entry := range entries {
		if err := addEntry(zw, entry); err != nil {
			zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finalize archive: %w", err)
	}
	return out.Sync()
}

func addEntry(zw *zip.Writer, entry Entry) error {
	in, err := os.Open(entry.Path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", entry.Path, err)
	}
	defer in.Close()

	w, err := zw.Create(entry.Name)
	if err != nil {
		return fmt.Errorf("could not add %s to archive: %w", entry.Name, err)
	}
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("could not write %s to archive: %w", entry.Name, err)
	}
	return nil
}
