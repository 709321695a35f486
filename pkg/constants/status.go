package constants

const (
	StatusHealthy = "healthy"
	StatusFailed  = "failed"
	StatusOK      = "ok"
)

const (
	MediaTypeMP3 = "audio/mpeg"
	MediaTypeZip = "application/zip"
	MediaTypeMP4 = "video/mp4"
)
