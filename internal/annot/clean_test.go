// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annot

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "a plain comment",
			want: "a plain comment",
		},
		{
			name: "crlf and cr become lf",
			in:   "line one\r\nline two\rline three",
			want: "line one\nline two\nline three",
		},
		{
			name: "tex ligatures",
			in:   "eﬃcient oﬄoading of traﬃc",
			want: "efficient offloading of traffic",
		},
		{
			name: "smart quotes and ellipsis",
			in:   "“it’s ‘fine’…”",
			want: `"it's 'fine'..."`,
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
