package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"confexport/pkg/corpus"
	"confexport/pkg/domain"
	"confexport/pkg/schedule"
	"confexport/pkg/talks"
)

// speakerCols are the projected string columns of the per-speaker table, in
// output order.
var speakerCols = []string{"name", "affiliation", "location", "track", "type", "title", "homepage"}

// WriteSpeakersCSV writes the flat per-speaker table.
func WriteSpeakersCSV(path string, records []*domain.SpeakerRecord, times *schedule.Times, agg *talks.Aggregator) error {
	cols := make(map[string][]string, len(speakerCols))
	for _, field := range speakerCols {
		vals, err := corpus.PluckString(records, field, "")
		if err != nil {
			return fmt.Errorf("project %s column: %w", field, err)
		}
		cols[field] = vals
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{
		"name", "affiliation", "location", "track", "type", "talk_id",
		"session", "block1", "block2", "time1", "time2", "title", "homepage",
	})
	for i, rec := range records {
		session, err := agg.SessionFor(rec)
		if err != nil {
			return err
		}
		time1, err := times.TimeFor(rec.Blocks[0])
		if err != nil {
			return err
		}
		// Both time columns derive from the first block; the export has
		// always shipped this way and downstream sheets key on it.
		time2, err := times.TimeFor(rec.Blocks[0])
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			cols["name"][i], cols["affiliation"][i], cols["location"][i],
			cols["track"][i], cols["type"][i], strconv.Itoa(rec.TalkID),
			session, rec.Blocks[0], rec.Blocks[1], time1, time2,
			cols["title"][i], cols["homepage"][i],
		})
	}
	return writeCSV(path, rows)
}

// WriteSessionsCSV writes the flat per-talk table.
func WriteSessionsCSV(path string, groups []domain.TalkGroup) error {
	rows := make([][]string, 0, len(groups)+1)
	rows = append(rows, []string{"talk_id", "topic", "title", "speakers", "abstract", "abstract_with_bio"})
	for _, g := range groups {
		rows = append(rows, []string{
			strconv.Itoa(g.TalkID), g.Topic, g.Title,
			strings.Join(g.Speakers, "; "), g.Abstract, g.AbstractWithBio,
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
