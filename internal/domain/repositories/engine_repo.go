package repositories

import "context"

// MediaEngine is the boundary to the external media-processing tool. All
// transcoding and trimming happens behind it, so tests can swap in a fake
// without spawning processes.
//
// A nil error means the engine reported success AND the expected output file
// exists - a zero exit status alone is not trusted.
type MediaEngine interface {
	// ExtractAudio decodes the source's audio stream and encodes it as MP3
	// at the configured bitrate, writing exactly one file at outputPath.
	ExtractAudio(ctx context.Context, sourcePath, outputPath string) error

	// ProbeDuration reads the source's total duration in seconds from its
	// metadata, without transcoding. The call is timeout-bounded.
	ProbeDuration(ctx context.Context, sourcePath string) (float64, error)

	// ExtractSubclip copies the bounded time range into a new container at
	// outputPath. Stream copy, no re-encode: faster and lossless.
	ExtractSubclip(ctx context.Context, sourcePath string, start, end float64, outputPath string) error

	// Version reports the engine's version string, used as a startup probe
	// for engine availability.
	Version(ctx context.Context) (string, error)
}
