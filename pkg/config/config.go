package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Scratch ScratchConfig
	Engine  EngineConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type ScratchConfig struct {
	Dir     string
	MaxSize int64         // request body limit, bytes
	MaxAge  time.Duration // orphan entries older than this get swept
}

type EngineConfig struct {
	ProbeTimeout   time.Duration
	ExtractTimeout time.Duration
	AudioBitrate   string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Scratch: ScratchConfig{
			Dir:     getEnv("SCRATCH_DIR", "temp"),
			MaxSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 2*1024*1024*1024), // 2GB
			MaxAge:  getEnvAsDuration("SCRATCH_MAX_AGE_MINUTES", 24*60) * time.Minute,
		},
		Engine: EngineConfig{
			ProbeTimeout:   getEnvAsDuration("ENGINE_PROBE_TIMEOUT_SECONDS", 30) * time.Second,
			ExtractTimeout: getEnvAsDuration("ENGINE_EXTRACT_TIMEOUT_SECONDS", 600) * time.Second,
			AudioBitrate:   getEnv("AUDIO_BITRATE", "192k"),
		},
	}
}

// EnsureScratchDir creates the scratch root. Extraction outputs are written
// there by an external process, so permissions are opened up on purpose; a
// chmod failure is logged but not fatal.
func (c *Config) EnsureScratchDir() error {
	if err := os.MkdirAll(c.Scratch.Dir, 0755); err != nil {
		return err
	}
	if err := os.Chmod(c.Scratch.Dir, 0777); err != nil {
		log.Printf("Could not set scratch dir permissions: %v", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue int64) time.Duration {
	return time.Duration(getEnvAsInt64(key, defaultValue))
}
