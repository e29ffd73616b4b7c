package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// renderHTML converts a markdown fragment to HTML.
func (p *Parser) renderHTML(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// renderSection converts a markdown fragment to both HTML and plain text.
func (p *Parser) renderSection(src []byte) (html, text string, err error) {
	html, err = p.renderHTML(src)
	if err != nil {
		return "", "", err
	}
	text, err = plainText(html)
	if err != nil {
		return "", "", err
	}
	return html, text, nil
}

// plainText strips all markup from rendered HTML.
func plainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse rendered HTML: %w", err)
	}
	return strings.TrimSpace(doc.Text()), nil
}

// unwrapParagraph removes the single wrapping <p> pair the renderer puts
// around inline content such as titles.
func unwrapParagraph(html string) string {
	out := strings.TrimSpace(html)
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return strings.TrimSpace(out)
}
