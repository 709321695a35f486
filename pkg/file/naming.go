package file

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BaseName returns the upload's filename without directory or extension, or
// fallback when the client sent no usable name.
func BaseName(filename, fallback string) string {
	name := filepath.Base(filename)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return fallback
	}
	return stem
}

// SourceExt returns the upload's extension, defaulting to .mp4.
func SourceExt(filename string) string {
	if ext := filepath.Ext(filepath.Base(filename)); ext != "" {
		return ext
	}
	return ".mp4"
}

func AudioName(filename string) string {
	return BaseName(filename, "output") + ".mp3"
}

// ClipName numbers clips 1-based in plan order; a single-clip plan gets no
// number suffix.
func ClipName(base string, index, total int) string {
	if total == 1 {
		return fmt.Sprintf("%s_clip.mp4", base)
	}
	return fmt.Sprintf("%s_clip_%d.mp4", base, index)
}

func ZipName(base string) string {
	return fmt.Sprintf("%s_clips.zip", base)
}
