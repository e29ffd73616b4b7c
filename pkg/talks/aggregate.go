package talks

import (
	"fmt"
	"strings"

	"confexport/pkg/domain"
	"confexport/pkg/schedule"
)

// typeLabels maps a talk type to its human-readable label.
var typeLabels = map[string]string{
	"talk":      "Talk",
	"lightning": "Lightning Talk",
	"keynote":   "Keynote",
}

// Aggregator joins per-speaker records into per-talk groups using the session
// reference data.
type Aggregator struct {
	sessions *schedule.Sessions
}

// NewAggregator creates an Aggregator.
func NewAggregator(sessions *schedule.Sessions) *Aggregator {
	return &Aggregator{sessions: sessions}
}

// SessionFor resolves a record's session from its first schedule block and
// its track.
func (a *Aggregator) SessionFor(rec *domain.SpeakerRecord) (string, error) {
	if len(rec.Blocks) == 0 {
		return "", fmt.Errorf("speaker %s has no schedule blocks", rec.Slug)
	}
	return a.sessions.SessionFor(rec.Blocks[0], rec.Track)
}

// TopicFor computes the composite topic label for a record. Keynotes carry
// the bare type label; everything else appends track and session.
func (a *Aggregator) TopicFor(rec *domain.SpeakerRecord) (string, error) {
	label, ok := typeLabels[rec.Type]
	if !ok {
		return "", &domain.ValidationError{
			File:   rec.Slug,
			Field:  "type",
			Value:  rec.Type,
			Reason: "unknown talk type",
		}
	}
	if rec.Type == "keynote" {
		return label, nil
	}
	session, err := a.SessionFor(rec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/Track %s/%s", label, rec.Track, session), nil
}

// groupKey identifies one talk. Records sharing a talk id must agree on every
// other component, or the grouping is inconsistent.
type groupKey struct {
	talkID   int
	topic    string
	title    string
	abstract string
}

// speakerLine is the per-speaker paragraph concatenated into speaker_info.
func speakerLine(rec *domain.SpeakerRecord) string {
	return fmt.Sprintf("Speaker: %s\n\n%s", rec.Name, rec.SummaryText)
}

// Group joins records into one TalkGroup per talk id, in first-occurrence
// order of the talk ids. A group count that differs from the distinct-talk-id
// count means records sharing an id diverged on topic, title or abstract.
func (a *Aggregator) Group(records []*domain.SpeakerRecord) ([]domain.TalkGroup, error) {
	groups := make(map[groupKey]*domain.TalkGroup)
	lines := make(map[groupKey][]string)
	var keyOrder []groupKey
	var idOrder []int
	seenIDs := make(map[int]bool)

	for _, rec := range records {
		topic, err := a.TopicFor(rec)
		if err != nil {
			return nil, err
		}
		key := groupKey{talkID: rec.TalkID, topic: topic, title: rec.Title, abstract: rec.Abstract}
		g, ok := groups[key]
		if !ok {
			g = &domain.TalkGroup{TalkID: rec.TalkID, Topic: topic, Title: rec.Title, Abstract: rec.Abstract}
			groups[key] = g
			keyOrder = append(keyOrder, key)
		}
		g.Speakers = append(g.Speakers, rec.Name)
		lines[key] = append(lines[key], speakerLine(rec))
		if !seenIDs[rec.TalkID] {
			seenIDs[rec.TalkID] = true
			idOrder = append(idOrder, rec.TalkID)
		}
	}

	if len(groups) != len(idOrder) {
		return nil, &domain.ConsistencyError{Groups: len(groups), TalkIDs: len(idOrder)}
	}

	byID := make(map[int]*domain.TalkGroup, len(groups))
	for _, key := range keyOrder {
		g := groups[key]
		g.SpeakerInfo = strings.Join(lines[key], "\n")
		g.AbstractWithBio = g.Abstract + "\n" + g.SpeakerInfo
		byID[key.talkID] = g
	}

	out := make([]domain.TalkGroup, 0, len(idOrder))
	for _, id := range idOrder {
		out = append(out, *byID[id])
	}
	return out, nil
}
