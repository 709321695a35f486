package media

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"video-clipper/pkg/config"
	perrs "video-clipper/pkg/errors"
)

// FFmpegEngine drives ffmpeg/ffprobe through ffmpeg-go. It implements
// repositories.MediaEngine.
type FFmpegEngine struct {
	probeTimeout   time.Duration
	extractTimeout time.Duration
	audioBitrate   string
}

func NewFFmpegEngine(cfg config.EngineConfig) *FFmpegEngine {
	return &FFmpegEngine{
		probeTimeout:   cfg.ProbeTimeout,
		extractTimeout: cfg.ExtractTimeout,
		audioBitrate:   cfg.AudioBitrate,
	}
}

func (e *FFmpegEngine) ExtractAudio(ctx context.Context, sourcePath, outputPath string) error {
	err := ffmpeg.Input(sourcePath).
		Output(outputPath, ffmpeg.KwArgs{
			"vn":     "",
			"acodec": "libmp3lame",
			"b:a":    e.audioBitrate,
		}).
		OverWriteOutput().
		WithTimeout(e.extractTimeout).
		Run()
	if err != nil {
		return perrs.ErrEngineFailure(errors.Wrap(err, "audio extraction"))
	}
	if _, err := os.Stat(outputPath); err != nil {
		return perrs.ErrOutputMissing("Audio file")
	}
	return nil
}

func (e *FFmpegEngine) ProbeDuration(ctx context.Context, sourcePath string) (float64, error) {
	probe, err := ffmpeg.ProbeWithTimeout(sourcePath, e.probeTimeout, nil)
	if err != nil {
		return 0, perrs.ErrEngineFailure(errors.Wrap(err, "probing video"))
	}
	duration, err := parseDuration(probe)
	if err != nil {
		return 0, perrs.ErrEngineFailure(err)
	}
	return duration, nil
}

// ExtractSubclip trims the range by stream copy into a new container. No
// decode/re-encode: faster and avoids generation loss.
func (e *FFmpegEngine) ExtractSubclip(ctx context.Context, sourcePath string, start, end float64, outputPath string) error {
	err := ffmpeg.Input(sourcePath, ffmpeg.KwArgs{"ss": start}).
		Output(outputPath, ffmpeg.KwArgs{
			"t":   end - start,
			"map": "0",
			"c":   "copy",
		}).
		OverWriteOutput().
		WithTimeout(e.extractTimeout).
		Run()
	if err != nil {
		return perrs.ErrEngineFailure(errors.Wrapf(err, "subclip %g-%g", start, end))
	}
	if _, err := os.Stat(outputPath); err != nil {
		return perrs.ErrOutputMissing("Clip file")
	}
	return nil
}

func (e *FFmpegEngine) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "ffmpeg", "-version").Output()
	if err != nil {
		return "", perrs.ErrEngineFailure(errors.Wrap(err, "ffmpeg -version"))
	}
	version, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(version), nil
}

// parseDuration digs the duration out of ffprobe's JSON, preferring the
// container format section and falling back to the first stream that carries
// one.
func parseDuration(probe string) (float64, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return 0, errors.Wrap(err, "parsing probe output")
	}

	if format, ok := data["format"].(map[string]interface{}); ok {
		if d, ok := durationValue(format); ok {
			return d, nil
		}
	}

	if streams, ok := data["streams"].([]interface{}); ok {
		for _, stream := range streams {
			s, ok := stream.(map[string]interface{})
			if !ok {
				continue
			}
			if d, ok := durationValue(s); ok {
				return d, nil
			}
		}
	}

	return 0, errors.New("could not determine video duration")
}

func durationValue(section map[string]interface{}) (float64, bool) {
	durationStr, ok := section["duration"].(string)
	if !ok {
		return 0, false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return d, true
}
