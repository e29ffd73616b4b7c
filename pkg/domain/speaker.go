package domain

// Links holds a speaker's optional profile URLs. Empty string means the link
// was not provided.
type Links struct {
	Homepage string `yaml:"homepage,omitempty"`
	Twitter  string `yaml:"twitter,omitempty"`
	GitHub   string `yaml:"github,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty"`
}

// SpeakerRecord is the normalized form of one speaker source document.
// It combines front-matter metadata with text derived from the document body.
type SpeakerRecord struct {
	Name        string   `yaml:"name"`
	Affiliation string   `yaml:"affiliation"`
	Location    string   `yaml:"location"`
	Track       string   `yaml:"track"`
	Type        string   `yaml:"type"`
	TalkID      int      `yaml:"talk_id"`
	Blocks      []string `yaml:"blocks"`
	Links       Links    `yaml:"links"`

	Title        string `yaml:"title"`
	Abstract     string `yaml:"abstract"`
	AbstractText string `yaml:"abstract_text"`
	Summary      string `yaml:"summary"`
	SummaryText  string `yaml:"summary_text"`
	Bio          string `yaml:"bio"`
	Headshot     string `yaml:"headshot"`
	Slug         string `yaml:"speaker_slug"`

	// Meta keeps any front-matter keys that are not part of the fixed schema.
	Meta map[string]any `yaml:"meta,omitempty"`
}

// StringField returns the named scalar string field of the record. Known
// schema fields are resolved by name; anything else is looked up in Meta.
// An absent field yields def. A field that is present but not a string
// yields a FieldTypeError.
func (r *SpeakerRecord) StringField(name, def string) (string, error) {
	switch name {
	case "name":
		return r.Name, nil
	case "affiliation":
		return r.Affiliation, nil
	case "location":
		return r.Location, nil
	case "track":
		return r.Track, nil
	case "type":
		return r.Type, nil
	case "title":
		return r.Title, nil
	case "abstract":
		return r.Abstract, nil
	case "abstract_text":
		return r.AbstractText, nil
	case "summary":
		return r.Summary, nil
	case "summary_text":
		return r.SummaryText, nil
	case "bio":
		return r.Bio, nil
	case "headshot":
		return r.Headshot, nil
	case "speaker_slug":
		return r.Slug, nil
	case "homepage":
		return r.Links.Homepage, nil
	case "twitter":
		return r.Links.Twitter, nil
	case "github":
		return r.Links.GitHub, nil
	case "linkedin":
		return r.Links.LinkedIn, nil
	}

	v, ok := r.Meta[name]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Record: r.Slug, Field: name, Value: v}
	}
	return s, nil
}

// TalkGroup is one talk aggregated over the speakers that share its talk id.
type TalkGroup struct {
	TalkID          int      `yaml:"talk_id"`
	Topic           string   `yaml:"topic"`
	Title           string   `yaml:"title"`
	Abstract        string   `yaml:"abstract"`
	Speakers        []string `yaml:"speakers"`
	SpeakerInfo     string   `yaml:"speaker_info"`
	AbstractWithBio string   `yaml:"abstract_with_bio"`
}
