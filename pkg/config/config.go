package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// placeholderBio is the boilerplate biography the submission form inserts for
// speakers who leave the field empty. Matching is by substring on rendered
// plain text, so a wording change here must track the form.
const placeholderBio = "The speaker has not yet provided a biography."

type Config struct {
	Paths   PathsConfig
	Assets  AssetsConfig
	Storage StorageConfig
	Logging LoggingConfig
}

type PathsConfig struct {
	SpeakersDir    string
	ImagesDir      string
	OutputDir      string
	BlockTimesFile string
	SessionsFile   string
}

type AssetsConfig struct {
	HeadshotBaseURL     string
	IconBaseURL         string
	CanonicalImageWidth int
	PlaceholderBio      string
}

type StorageConfig struct {
	SupabaseURL string
	SupabaseKey string
	Bucket      string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Paths: PathsConfig{
			SpeakersDir:    getEnv("SPEAKERS_DIR", "data/speakers"),
			ImagesDir:      getEnv("IMAGES_DIR", "data/images"),
			OutputDir:      getEnv("OUTPUT_DIR", "output"),
			BlockTimesFile: getEnv("BLOCK_TIMES_FILE", "data/block_times.yml"),
			SessionsFile:   getEnv("SESSIONS_FILE", "data/sessions.yml"),
		},
		Assets: AssetsConfig{
			HeadshotBaseURL:     withTrailingSlash(getEnv("HEADSHOT_BASE_URL", "https://conf.example.com/images/")),
			IconBaseURL:         withTrailingSlash(getEnv("ICON_BASE_URL", "https://conf.example.com/icons/")),
			CanonicalImageWidth: getEnvInt("CANONICAL_IMAGE_WIDTH", 300),
			PlaceholderBio:      getEnv("PLACEHOLDER_BIO", placeholderBio),
		},
		Storage: StorageConfig{
			SupabaseURL: getEnv("SUPABASE_URL", ""),
			SupabaseKey: getEnv("SUPABASE_KEY", ""),
			Bucket:      getEnv("STORAGE_BUCKET", "speaker-images"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.SpeakersDir == "" {
		return fmt.Errorf("SPEAKERS_DIR must not be empty")
	}
	if c.Paths.ImagesDir == "" {
		return fmt.Errorf("IMAGES_DIR must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	if c.Assets.CanonicalImageWidth <= 0 {
		return fmt.Errorf("CANONICAL_IMAGE_WIDTH must be positive, got %d", c.Assets.CanonicalImageWidth)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func withTrailingSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
