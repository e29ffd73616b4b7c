package links

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"confexport/pkg/domain"
)

// Canonical profile URL prefixes used when expanding bare handles.
const (
	TwitterPrefix  = "https://twitter.com/"
	GitHubPrefix   = "https://github.com/"
	LinkedInPrefix = "https://www.linkedin.com/in/"

	// linkedInDomain matches the www-less and regional LinkedIn URL variants
	// that some speakers paste verbatim.
	linkedInDomain = "linkedin.com"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Normalize canonicalizes one social-media value. nil stays nil (link
// absent). A bare handle, with or without a leading @, is expanded to
// prefix+handle. A value that already contains the canonical prefix (or, for
// LinkedIn, the bare domain) passes through unchanged. Anything else is a
// validation error naming the value.
func Normalize(value *string, prefix string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimPrefix(*value, "@")
	if handlePattern.MatchString(v) {
		out := prefix + v
		return &out, nil
	}
	if strings.Contains(v, prefix) {
		return value, nil
	}
	if prefix == LinkedInPrefix && strings.Contains(v, linkedInDomain) {
		return value, nil
	}
	return nil, &domain.ValidationError{
		Field:  "links",
		Value:  *value,
		Reason: fmt.Sprintf("not a handle and does not contain %s", prefix),
	}
}

// ValidateHomepage checks that raw parses as an absolute URL with both a
// scheme and a host.
func ValidateHomepage(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &domain.ValidationError{Field: "homepage", Value: raw, Reason: err.Error()}
	}
	if u.Scheme == "" || u.Host == "" {
		return &domain.ValidationError{Field: "homepage", Value: raw, Reason: "URL must have scheme and host"}
	}
	return nil
}

// IconHTML renders one icon-linked anchor per non-empty link, in the fixed
// Homepage, Twitter, GitHub, LinkedIn order. Icon URLs follow the
// iconBase + lowercase name + ".png" convention. Returns "" when the speaker
// has no links.
func IconHTML(l domain.Links, iconBase string) string {
	ordered := []struct {
		name string
		href string
	}{
		{"Homepage", l.Homepage},
		{"Twitter", l.Twitter},
		{"GitHub", l.GitHub},
		{"LinkedIn", l.LinkedIn},
	}

	var anchors []string
	for _, link := range ordered {
		if link.href == "" {
			continue
		}
		icon := iconBase + strings.ToLower(link.name) + ".png"
		anchors = append(anchors, fmt.Sprintf(`<a href="%s"><img src="%s" alt="%s" height="24"/></a>`, link.href, icon, link.name))
	}
	if len(anchors) == 0 {
		return ""
	}
	return "<p>" + strings.Join(anchors, " ") + "</p>"
}
