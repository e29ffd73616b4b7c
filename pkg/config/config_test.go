package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Paths.SpeakersDir != "data/speakers" {
		t.Errorf("Expected default speakers dir, got %q", cfg.Paths.SpeakersDir)
	}
	if cfg.Assets.CanonicalImageWidth != 300 {
		t.Errorf("Expected canonical width 300, got %d", cfg.Assets.CanonicalImageWidth)
	}
	if cfg.Assets.PlaceholderBio == "" {
		t.Error("Expected a default placeholder bio sentinel")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level 'info', got %q", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPEAKERS_DIR", "content/speakers")
	t.Setenv("CANONICAL_IMAGE_WIDTH", "400")
	t.Setenv("HEADSHOT_BASE_URL", "https://cdn.example.com/headshots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Paths.SpeakersDir != "content/speakers" {
		t.Errorf("Expected overridden speakers dir, got %q", cfg.Paths.SpeakersDir)
	}
	if cfg.Assets.CanonicalImageWidth != 400 {
		t.Errorf("Expected width 400, got %d", cfg.Assets.CanonicalImageWidth)
	}
	if cfg.Assets.HeadshotBaseURL != "https://cdn.example.com/headshots/" {
		t.Errorf("Expected trailing slash on base URL, got %q", cfg.Assets.HeadshotBaseURL)
	}
}

func TestLoadBadWidthFallsBack(t *testing.T) {
	t.Setenv("CANONICAL_IMAGE_WIDTH", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Assets.CanonicalImageWidth != 300 {
		t.Errorf("Expected fallback width 300, got %d", cfg.Assets.CanonicalImageWidth)
	}
}
