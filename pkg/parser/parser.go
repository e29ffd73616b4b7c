package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"confexport/pkg/domain"
	"confexport/pkg/images"
	"confexport/pkg/links"
	"confexport/pkg/schedule"
)

// Config holds the fixed inputs the parser needs beyond the document itself.
type Config struct {
	// ImagesDir is the directory scanned for speaker headshots.
	ImagesDir string
	// HeadshotBaseURL prefixes resolved headshot filenames.
	HeadshotBaseURL string
	// IconBaseURL prefixes social-link icon filenames.
	IconBaseURL string
	// PlaceholderBio is the boilerplate text used for speakers who did not
	// supply a biography. A rendered bio containing it is blanked.
	PlaceholderBio string
}

// Parser turns one speaker source document into a SpeakerRecord.
type Parser struct {
	cfg Config
	md  goldmark.Markdown
}

// New creates a Parser.
func New(cfg Config) *Parser {
	return &Parser{cfg: cfg, md: goldmark.New()}
}

// frontMatter is the raw metadata block. Links are pointers so an absent link
// can be told apart from an empty one; unknown keys are kept in Meta.
type frontMatter struct {
	Name        string   `yaml:"name"`
	Affiliation string   `yaml:"affiliation"`
	Location    string   `yaml:"location"`
	Track       string   `yaml:"track"`
	Type        string   `yaml:"type"`
	TalkID      int      `yaml:"talk_id"`
	Blocks      []string `yaml:"blocks"`
	Links       struct {
		Homepage *string `yaml:"homepage"`
		Twitter  *string `yaml:"twitter"`
		GitHub   *string `yaml:"github"`
		LinkedIn *string `yaml:"linkedin"`
	} `yaml:"links"`
	Meta map[string]any `yaml:",inline"`
}

// ParseFile reads, validates and normalizes one source document. Any
// violation of the document contract is fatal and carries the filename.
func (p *Parser) ParseFile(path string) (*domain.SpeakerRecord, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file := filepath.Base(path)
	slug := strings.TrimSuffix(file, filepath.Ext(file))

	meta, body, err := splitFrontMatter(file, src)
	if err != nil {
		return nil, err
	}
	secs := p.sectionize(body)
	if err := checkStructure(file, secs); err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return nil, &domain.StructureError{File: file, Reason: fmt.Sprintf("metadata block: %v", err)}
	}

	titleHTML, err := p.renderHTML(body[secs[0].start:secs[0].stop])
	if err != nil {
		return nil, fmt.Errorf("%s: title: %w", file, err)
	}
	title := unwrapParagraph(titleHTML)

	abstract, abstractText, err := p.renderSection(body[secs[1].start:secs[1].stop])
	if err != nil {
		return nil, fmt.Errorf("%s: abstract: %w", file, err)
	}
	summary, summaryText, err := p.renderSection(body[secs[3].start:secs[3].stop])
	if err != nil {
		return nil, fmt.Errorf("%s: summary: %w", file, err)
	}
	if p.cfg.PlaceholderBio != "" && strings.Contains(summaryText, p.cfg.PlaceholderBio) {
		summary, summaryText = "", ""
	}

	if err := schedule.ValidateBlocks(file, fm.Blocks); err != nil {
		return nil, err
	}

	if fm.Links.Homepage != nil {
		if err := links.ValidateHomepage(*fm.Links.Homepage); err != nil {
			return nil, withFile(err, file)
		}
	}
	twitter, err := links.Normalize(fm.Links.Twitter, links.TwitterPrefix)
	if err != nil {
		return nil, withFile(err, file)
	}
	github, err := links.Normalize(fm.Links.GitHub, links.GitHubPrefix)
	if err != nil {
		return nil, withFile(err, file)
	}
	linkedin, err := links.Normalize(fm.Links.LinkedIn, links.LinkedInPrefix)
	if err != nil {
		return nil, withFile(err, file)
	}

	headshot, err := images.ResolveHeadshot(p.cfg.ImagesDir, slug, p.cfg.HeadshotBaseURL)
	if err != nil {
		return nil, withFile(err, file)
	}

	speakerLinks := domain.Links{
		Homepage: deref(fm.Links.Homepage),
		Twitter:  deref(twitter),
		GitHub:   deref(github),
		LinkedIn: deref(linkedin),
	}

	return &domain.SpeakerRecord{
		Name:         fm.Name,
		Affiliation:  fm.Affiliation,
		Location:     fm.Location,
		Track:        fm.Track,
		Type:         fm.Type,
		TalkID:       fm.TalkID,
		Blocks:       fm.Blocks,
		Links:        speakerLinks,
		Title:        title,
		Abstract:     abstract,
		AbstractText: abstractText,
		Summary:      summary,
		SummaryText:  summaryText,
		Bio:          summary + links.IconHTML(speakerLinks, p.cfg.IconBaseURL),
		Headshot:     headshot,
		Slug:         slug,
		Meta:         fm.Meta,
	}, nil
}

// withFile stamps the offending filename onto validation errors raised by
// file-agnostic helpers.
func withFile(err error, file string) error {
	var v *domain.ValidationError
	if errors.As(err, &v) && v.File == "" {
		v.File = file
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
