package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintableAsBlockString(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"hello", true},
		{"line one\n  line two", true},
		{"  indented\nflush", true},
		{"", false},
		{"  only indented", false},
		{"\nleading blank line", false},
		{"trailing blank line\n  ", false},
		{"carriage\rreturn", false},
		{"bell\x07", false},
		{"tab\tis fine", true},
		{`contains """ quotes`, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PrintableAsBlockString(tc.value), "%q", tc.value)
	}
}

func TestBlockStringValue_RoundTrip(t *testing.T) {
	// Values accepted by PrintableAsBlockString survive being indented on
	// their own lines and dedented again.
	for _, value := range []string{"a", "a\n  b\nc", "  x\ny", "a\n\nb"} {
		if !PrintableAsBlockString(value) {
			t.Fatalf("%q should be printable", value)
		}
		raw := "\n"
		for _, line := range strings.Split(value, "\n") {
			if line != "" {
				raw += "    " + line
			}
			raw += "\n"
		}
		raw += "    "
		assert.Equal(t, value, blockStringValue(raw))
	}
}
