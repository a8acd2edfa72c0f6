package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep assertions on prompt text free of escape sequences.
	color.Disable()
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "first option", input: "1\n", expected: 0},
		{name: "last option", input: "3\n", expected: 2},
		{name: "retries after junk", input: "abc\n0\n9\n2\n", expected: 1},
	}

	options := []string{"Python 3.12.1 (/usr/bin/python3)", "Python 3.11.9 (/usr/local/bin/python3)", "Python 2.7.18 (/usr/bin/python)"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewWithStreams(strings.NewReader(tt.input), out)

			idx, err := p.Select("Select the Python installation to use", options)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
			assert.Contains(t, out.String(), "Select the Python installation to use")
			assert.Contains(t, out.String(), "1)")
		})
	}
}

func TestSelect_NoOptions(t *testing.T) {
	p := NewWithStreams(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Select("anything", nil)
	assert.Error(t, err)
}

func TestSelect_EOF(t *testing.T) {
	p := NewWithStreams(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Select("pick", []string{"only"})
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "yes word", input: "yes\n", expected: true},
		{name: "empty defaults to yes", input: "\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "no word", input: "NO\n", expected: false},
		{name: "retries after junk", input: "maybe\nn\n", expected: false},
		{name: "eof defaults to no", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewWithStreams(strings.NewReader(tt.input), out)
			assert.Equal(t, tt.expected, p.Confirm("Uninstall %s?", "clyp"))
			assert.Contains(t, out.String(), "Uninstall clyp? [Y/n]")
		})
	}
}

func TestInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewWithStreams(strings.NewReader("  1.2.3 \n"), out)

	answer, err := p.Input("Enter the Clyp version (e.g. 1.2.3)")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", answer)
}
