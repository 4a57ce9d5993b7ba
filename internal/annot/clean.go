// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annot

import "strings"

// substitutions maps TeX ligatures and typographic punctuation, common in
// annotation text copied out of papers, to ASCII equivalents.
var substitutions = map[rune]string{
	'ﬀ': "ff",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
	'‘': "'",
	'’': "'",
	'“': `"`,
	'”': `"`,
	'…': "...",
}

// Normalize prepares annotation comment text for Markdown output: line
// endings become LF and ligatures/smart quotes become their ASCII forms.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := substitutions[r]; ok {
			b.WriteString(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
