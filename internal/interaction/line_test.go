package interaction

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

func TestLinePrompter_Input(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("My App\r\n"), &out)

	got, err := p.Input("Project name:", nil)
	require.NoError(t, err)
	assert.Equal(t, "My App", got)
	assert.Contains(t, out.String(), "Project name:")
}

func TestLinePrompter_InputWithoutTrailingNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("demo"), &bytes.Buffer{})

	got, err := p.Input("Project name:", nil)
	require.NoError(t, err)
	assert.Equal(t, "demo", got)
}

func TestLinePrompter_InputEOFCancels(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Input("Project name:", nil)
	assert.ErrorIs(t, err, oerrors.ErrCancelled)
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes uppercase", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default no", "\n", false, false},
		{"empty uses default yes", "\n", true, true},
		{"garbage uses default", "maybe\n", false, false},
		{"eof uses default", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Overwrite?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinePrompter_ConfirmSuffix(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\n"), &out)
	_, err := p.Confirm("Overwrite?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")

	out.Reset()
	p = NewLinePrompter(strings.NewReader("\n"), &out)
	_, err = p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")
}

func TestLinePrompter_Select(t *testing.T) {
	options := []string{"react", "react-ts"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"by number", "2\n", "react-ts"},
		{"by name", "react\n", "react"},
		{"case insensitive name", "REACT-TS\n", "react-ts"},
		{"empty picks default", "\n", "react"},
		{"retries after invalid", "7\nfoo\n2\n", "react-ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Select("Choose a template:", options, "react")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "* 1) react")
		})
	}
}

func TestLinePrompter_SelectEOFCancels(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("9\n"), &bytes.Buffer{})

	_, err := p.Select("Choose:", []string{"a", "b"}, "")
	assert.ErrorIs(t, err, oerrors.ErrCancelled)
}

func TestMapAbort(t *testing.T) {
	assert.ErrorIs(t, mapAbort(huh.ErrUserAborted), oerrors.ErrCancelled)

	other := errors.New("boom")
	assert.Equal(t, other, mapAbort(other))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "abc", firstLine("abc"))
}

func TestNew_NonTerminalUsesLinePrompter(t *testing.T) {
	p := New(nil, &bytes.Buffer{})
	_, ok := p.(*LinePrompter)
	assert.True(t, ok)
}
