package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"YES", true},
		{"Yeah sure", true},
		{"  y  ", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"N", false},
		{"ok", false},
		{"maybe", false},
		{" ", false},
		{"1", false},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAffirmative(tt.input))
		})
	}
}

func TestPrompterLine(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("  hello world  \n"), &out)

	line, err := p.Line("path: ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)
	assert.Equal(t, "path: ", out.String())
}

func TestPrompterLineEOF(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader(""), &out)

	line, err := p.Line("anything? ")
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestPrompterConfirm(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("yes\nnope\n\n"), &out)

	ok, err := p.Confirm("first? ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm("second? ")
	require.NoError(t, err)
	assert.False(t, ok)

	// Empty line counts as no.
	ok, err = p.Confirm("third? ")
	require.NoError(t, err)
	assert.False(t, ok)
}
