package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"confexport/pkg/domain"
)

// WriteSpeakerFiles writes one YAML file per speaker under dir/speakers,
// named by slug.
func WriteSpeakerFiles(dir string, records []*domain.SpeakerRecord) error {
	speakersDir := filepath.Join(dir, "speakers")
	if err := os.MkdirAll(speakersDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", speakersDir, err)
	}
	for _, rec := range records {
		path := filepath.Join(speakersDir, rec.Slug+".yml")
		if err := writeYAML(path, rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteTalkLists partitions the corpus by talk type into talks.yml and
// lightning.yml. Keynotes belong to the main talk list.
func WriteTalkLists(dir string, records []*domain.SpeakerRecord) error {
	var regular, lightning []*domain.SpeakerRecord
	for _, rec := range records {
		if rec.Type == "lightning" {
			lightning = append(lightning, rec)
		} else {
			regular = append(regular, rec)
		}
	}
	if err := writeYAML(filepath.Join(dir, "talks.yml"), regular); err != nil {
		return err
	}
	return writeYAML(filepath.Join(dir, "lightning.yml"), lightning)
}

// WriteLookups writes the derived session/speaker lookup tables.
func WriteLookups(dir string, bySession map[string][]string, bySpeaker map[string]string) error {
	if err := writeYAML(filepath.Join(dir, "session_speakers.yml"), bySession); err != nil {
		return err
	}
	return writeYAML(filepath.Join(dir, "speaker_sessions.yml"), bySpeaker)
}

func writeYAML(path string, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
