package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"confexport/pkg/domain"
)

// FileParser parses one source document into a record.
type FileParser interface {
	ParseFile(path string) (*domain.SpeakerRecord, error)
}

// Load discovers every markdown source document directly inside dir, parses
// each one, and returns the records sorted case-insensitively by speaker
// name. The first parse failure aborts the load; there is no partial result.
func Load(dir string, p FileParser) ([]*domain.SpeakerRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read speaker dir %s: %w", dir, err)
	}

	var records []*domain.SpeakerRecord
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ".md" {
			continue
		}
		rec, err := p.ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no speaker documents found in %s", dir)
	}

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(records, func(i, j int) bool {
		return coll.CompareString(records[i].Name, records[j].Name) < 0
	})
	return records, nil
}

// PluckString projects one named string field across the corpus, applying def
// where the field is absent. A present-but-non-string field fails the whole
// projection.
func PluckString(records []*domain.SpeakerRecord, field, def string) ([]string, error) {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		v, err := rec.StringField(field, def)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
