// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/reading-notes/pkg/types"
)

// labelRe matches the position label that ends every annotation bullet,
// e.g. "| Page 12 (Highlight).".
var labelRe = regexp.MustCompile(`\| Page (\d+) \((\w+)\)\.$`)

// ParseNote reads a note file back: the YAML front matter and the
// annotation bullets. The library index uses this to ingest notes
// without re-reading the source PDFs.
func ParseNote(data []byte) (types.FrontMatter, []types.Annotation, error) {
	var fm types.FrontMatter

	s := string(data)
	if !strings.HasPrefix(s, "---\n") {
		return fm, nil, errors.New("note has no front-matter block")
	}
	rest := s[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return fm, nil, errors.New("unterminated front-matter block")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, nil, fmt.Errorf("parsing front matter: %w", err)
	}

	body := rest[end+len("\n---\n"):]
	return fm, parseBullets(body), nil
}

// parseBullets recovers annotations from the rendered bullet format: an
// entry opens with " * ", continues over plain lines, and closes with the
// line carrying the position label. Headings and blank lines terminate
// any entry they interrupt.
func parseBullets(body string) []types.Annotation {
	var (
		anns  []types.Annotation
		cur   []string
		inAnn bool
	)

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, " * ") {
			inAnn = true
			cur = nil
			line = strings.TrimPrefix(line, " * ")
		} else if !inAnn || line == "" || strings.HasPrefix(line, "#") {
			inAnn = false
			continue
		}

		m := labelRe.FindStringSubmatch(line)
		if m == nil || !types.SupportedSubtypes[types.AnnotationSubtype(m[2])] {
			cur = append(cur, line)
			continue
		}

		if text := strings.TrimRight(strings.TrimSuffix(line, m[0]), " "); text != "" {
			cur = append(cur, text)
		}
		page, _ := strconv.Atoi(m[1])
		anns = append(anns, types.Annotation{
			Subtype: types.AnnotationSubtype(m[2]),
			Page:    page,
			Comment: strings.Join(cur, "\n"),
		})
		inAnn = false
		cur = nil
	}

	return anns
}
