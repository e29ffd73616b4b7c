package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"confexport/pkg/domain"
	"confexport/pkg/schedule"
	"confexport/pkg/talks"
)

func testAggregator() *talks.Aggregator {
	return talks.NewAggregator(schedule.NewSessions(map[string]any{
		"alfa": map[string]any{"A": "Data Pipelines"},
	}))
}

func testTimes() *schedule.Times {
	return schedule.NewTimes(map[string]string{"alfa": "09:00", "golf": "14:00"})
}

func testRecord(name, slug string, talkID int) *domain.SpeakerRecord {
	return &domain.SpeakerRecord{
		Name:         name,
		Affiliation:  "Example Corp",
		Location:     "Oslo, Norway",
		Track:        "A",
		Type:         "talk",
		TalkID:       talkID,
		Blocks:       []string{"alfa", "golf"},
		Links:        domain.Links{Twitter: "https://twitter.com/" + slug},
		Title:        "A Talk",
		Abstract:     "<p>The abstract.</p>",
		AbstractText: "The abstract.",
		Summary:      "<p>A bio.</p>",
		SummaryText:  "A bio.",
		Bio:          "<p>A bio.</p>",
		Headshot:     "https://conf.example.com/images/" + slug + ".png",
		Slug:         slug,
		Meta:         map[string]any{"pronouns": "she/her"},
	}
}

func TestSpeakerFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec := testRecord("Ana Gray", "ana-gray", 1)

	if err := WriteSpeakerFiles(dir, []*domain.SpeakerRecord{rec}); err != nil {
		t.Fatalf("Failed to write speaker files: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "speakers", "ana-gray.yml"))
	if err != nil {
		t.Fatalf("Failed to read speaker file: %v", err)
	}
	var got domain.SpeakerRecord
	if err := yaml.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Failed to unmarshal speaker file: %v", err)
	}
	if !reflect.DeepEqual(&got, rec) {
		t.Errorf("Round-trip mismatch:\n got %+v\nwant %+v", got, *rec)
	}
}

func TestWriteTalkLists(t *testing.T) {
	dir := t.TempDir()
	records := []*domain.SpeakerRecord{
		testRecord("Ana Gray", "ana-gray", 1),
		testRecord("Ben Kim", "ben-kim", 2),
		testRecord("Cam Wu", "cam-wu", 3),
	}
	records[1].Type = "lightning"
	records[2].Type = "keynote"

	if err := WriteTalkLists(dir, records); err != nil {
		t.Fatalf("Failed to write talk lists: %v", err)
	}

	var regular, lightning []domain.SpeakerRecord
	readYAML(t, filepath.Join(dir, "talks.yml"), &regular)
	readYAML(t, filepath.Join(dir, "lightning.yml"), &lightning)

	if len(regular) != 2 {
		t.Errorf("Expected 2 records in talks.yml (talk + keynote), got %d", len(regular))
	}
	if len(lightning) != 1 || lightning[0].Name != "Ben Kim" {
		t.Errorf("Expected only Ben Kim in lightning.yml, got %v", lightning)
	}
}

func TestWriteSpeakersCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	records := []*domain.SpeakerRecord{
		testRecord("Ana Gray", "ana-gray", 1),
		testRecord("Ben Kim", "ben-kim", 2),
	}

	if err := WriteSpeakersCSV(path, records, testTimes(), testAggregator()); err != nil {
		t.Fatalf("Failed to write speakers CSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d rows", len(rows))
	}

	header := rows[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("Missing column %q in header %v", name, header)
		return -1
	}

	if rows[1][col("name")] != "Ana Gray" {
		t.Errorf("Expected first row for Ana Gray, got %q", rows[1][col("name")])
	}
	if rows[1][col("session")] != "Data Pipelines" {
		t.Errorf("Expected session lookup, got %q", rows[1][col("session")])
	}
	if rows[1][col("homepage")] != "" {
		t.Errorf("Expected empty homepage column, got %q", rows[1][col("homepage")])
	}
}

// Both time columns are looked up from the first schedule block, so they are
// always equal. This pins down the long-standing export shape.
func TestWriteSpeakersCSVTimeColumnsEqual(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	records := []*domain.SpeakerRecord{testRecord("Ana Gray", "ana-gray", 1)}

	if err := WriteSpeakersCSV(path, records, testTimes(), testAggregator()); err != nil {
		t.Fatalf("Failed to write speakers CSV: %v", err)
	}

	rows := readCSV(t, path)
	header, row := rows[0], rows[1]
	var time1, time2 string
	for i, h := range header {
		switch h {
		case "time1":
			time1 = row[i]
		case "time2":
			time2 = row[i]
		}
	}
	if time1 != "09:00" {
		t.Errorf("Expected time1 from first block, got %q", time1)
	}
	if time1 != time2 {
		t.Errorf("Expected equal time columns, got %q and %q", time1, time2)
	}
}

func TestWriteSessionsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export_sessions.csv")
	groups := []domain.TalkGroup{
		{
			TalkID:          42,
			Topic:           "Talk/Track A/Data Pipelines",
			Title:           "A Shared Talk",
			Abstract:        "<p>The abstract.</p>",
			Speakers:        []string{"Ana Gray", "Ben Kim"},
			SpeakerInfo:     "Speaker: Ana Gray\n\nBio A\nSpeaker: Ben Kim\n\nBio B",
			AbstractWithBio: "<p>The abstract.</p>\nSpeaker: Ana Gray\n\nBio A\nSpeaker: Ben Kim\n\nBio B",
		},
	}

	if err := WriteSessionsCSV(path, groups); err != nil {
		t.Fatalf("Failed to write sessions CSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d rows", len(rows))
	}
	row := rows[1]
	if row[0] != "42" {
		t.Errorf("Expected talk_id 42, got %q", row[0])
	}
	if row[3] != "Ana Gray; Ben Kim" {
		t.Errorf("Expected joined speakers, got %q", row[3])
	}
}

func TestWriteLookups(t *testing.T) {
	dir := t.TempDir()
	bySession := map[string][]string{"Data Pipelines": {"Ana Gray"}}
	bySpeaker := map[string]string{"Ana Gray": "Data Pipelines"}

	if err := WriteLookups(dir, bySession, bySpeaker); err != nil {
		t.Fatalf("Failed to write lookup tables: %v", err)
	}

	var gotSessions map[string][]string
	readYAML(t, filepath.Join(dir, "session_speakers.yml"), &gotSessions)
	if !reflect.DeepEqual(gotSessions, bySession) {
		t.Errorf("Session table mismatch: %v", gotSessions)
	}

	var gotSpeakers map[string]string
	readYAML(t, filepath.Join(dir, "speaker_sessions.yml"), &gotSpeakers)
	if !reflect.DeepEqual(gotSpeakers, bySpeaker) {
		t.Errorf("Speaker table mismatch: %v", gotSpeakers)
	}
}

func readYAML(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		t.Fatalf("Failed to unmarshal %s: %v", path, err)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return rows
}
