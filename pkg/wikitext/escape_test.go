package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "Nothing special here.",
			want: "Nothing special here.",
		},
		{
			name: "double apostrophe wraps whole text",
			in:   "some ''bold'' text",
			want: "<nowiki>some ''bold'' text</nowiki>",
		},
		{
			name: "line starting with bullet",
			in:   "* not a list",
			want: "<nowiki>* not a list</nowiki>",
		},
		{
			name: "line starting with pipe on second line",
			in:   "first\n| second",
			want: "<nowiki>first\n| second</nowiki>",
		},
		{
			name: "pipe mid-line untouched",
			in:   "a | b",
			want: "a | b",
		},
		{
			name: "horizontal rule line",
			in:   "----",
			want: "<nowiki>----</nowiki>",
		},
		{
			name: "table start line",
			in:   "{| border",
			want: "<nowiki>{| border</nowiki>",
		},
		{
			name: "internal link open",
			in:   "see [[Page]]",
			want: "<nowiki>see [[Page]]</nowiki>",
		},
		{
			name: "template open",
			in:   "uses {{tpl}}",
			want: "<nowiki>uses {{tpl}}</nowiki>",
		},
		{
			name: "literal external link span only",
			in:   "See [http://x.com Link] for details",
			want: "See <nowiki>[http://x.com Link]</nowiki> for details",
		},
		{
			name: "bare scheme bracket without text",
			in:   "try [ftp://host/file]",
			want: "try <nowiki>[ftp://host/file]</nowiki>",
		},
		{
			name: "bracket without scheme untouched",
			in:   "array[index] stays",
			want: "array[index] stays",
		},
		{
			name: "two link spans wrapped individually",
			in:   "[http://a.com] and [http://b.com b]",
			want: "<nowiki>[http://a.com]</nowiki> and <nowiki>[http://b.com b]</nowiki>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeText(tt.in))
		})
	}
}
