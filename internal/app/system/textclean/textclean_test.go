package textclean_test

import (
	"testing"

	"github.com/dalemusser/facultyhub/internal/app/system/textclean"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Computer Science", "Computer Science"},
		{"trims whitespace", "  Fall 2024  ", "Fall 2024"},
		{"strips tags", "<b>Amal</b>", "Amal"},
		{"strips script", `<script>alert("x")</script>Name`, "Name"},
		{"unescapes entities", "R&amp;D", "R&D"},
		{"arabic untouched", "قسم علوم الحاسب", "قسم علوم الحاسب"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textclean.Clean(tc.in); got != tc.want {
				t.Errorf("Clean(%q): got %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
