package talks

import "confexport/pkg/domain"

// SpeakersBySession builds the session → speaker-names lookup table,
// preserving the corpus order of speakers within each session.
func (a *Aggregator) SpeakersBySession(records []*domain.SpeakerRecord) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, rec := range records {
		session, err := a.SessionFor(rec)
		if err != nil {
			return nil, err
		}
		out[session] = append(out[session], rec.Name)
	}
	return out, nil
}

// SessionBySpeaker builds the speaker-name → session lookup table.
func (a *Aggregator) SessionBySpeaker(records []*domain.SpeakerRecord) (map[string]string, error) {
	out := make(map[string]string, len(records))
	for _, rec := range records {
		session, err := a.SessionFor(rec)
		if err != nil {
			return nil, err
		}
		out[rec.Name] = session
	}
	return out, nil
}
