package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"confexport/pkg/domain"
)

// Section kind names, also used verbatim in structure diagnostics.
const (
	kindMeta    = "metadata"
	kindHeading = "heading"
	kindBody    = "body"
)

// section is one top-level slice of the document body, addressed as a span
// into the original source.
type section struct {
	kind  string
	start int
	stop  int
}

var (
	fenceOpen    = []byte("---\n")
	fenceClose   = []byte("\n---")
	fenceCloseNL = []byte("\n---\n")
)

// splitFrontMatter separates the leading YAML metadata block from the
// markdown body. The block must open the document and be closed by a matching
// fence.
func splitFrontMatter(file string, src []byte) (meta, body []byte, err error) {
	if !bytes.HasPrefix(src, fenceOpen) {
		return nil, nil, &domain.StructureError{File: file, Reason: "document must start with a metadata block"}
	}
	rest := src[len(fenceOpen):]
	end := bytes.Index(rest, fenceCloseNL)
	if end >= 0 {
		meta = rest[:end]
		body = rest[end+len(fenceCloseNL):]
	} else if bytes.HasSuffix(rest, fenceClose) {
		meta = rest[:len(rest)-len(fenceClose)]
	} else {
		return nil, nil, &domain.StructureError{File: file, Reason: "unterminated metadata block"}
	}
	if len(bytes.TrimSpace(meta)) == 0 {
		return nil, nil, &domain.StructureError{File: file, Reason: "empty metadata block"}
	}
	return meta, body, nil
}

// sectionize folds the body's top-level markdown nodes into an ordered
// section sequence. Headings stand alone; consecutive non-heading nodes merge
// into a single body section.
func (p *Parser) sectionize(source []byte) []section {
	doc := p.md.Parser().Parse(text.NewReader(source))

	var secs []section
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		start, stop := nodeSpan(n)
		if start < 0 {
			// Nodes without printable source, e.g. thematic breaks.
			continue
		}
		if n.Kind() == ast.KindHeading {
			secs = append(secs, section{kind: kindHeading, start: start, stop: stop})
			continue
		}
		if len(secs) > 0 && secs[len(secs)-1].kind == kindBody {
			secs[len(secs)-1].stop = stop
			continue
		}
		secs = append(secs, section{kind: kindBody, start: start, stop: stop})
	}
	return secs
}

// nodeSpan returns the source span covered by a node and its descendants, or
// (-1, -1) when the node carries no source lines.
func nodeSpan(n ast.Node) (int, int) {
	start, stop := -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		lines := c.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if start < 0 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	return start, stop
}

// checkStructure enforces the fixed five-section document shape.
func checkStructure(file string, secs []section) error {
	got := []string{kindMeta}
	for _, s := range secs {
		got = append(got, s.kind)
	}
	want := []string{kindMeta, kindHeading, kindBody, kindHeading, kindBody}
	if len(got) == len(want) {
		match := true
		for i := range got {
			if got[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return nil
		}
	}
	return &domain.StructureError{
		File:   file,
		Reason: "sections are [" + strings.Join(got, " ") + "], want [" + strings.Join(want, " ") + "]",
	}
}
