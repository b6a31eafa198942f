package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "last\nlest\nlist", []string{"last", "lest", "list"}},
		{"surrounding whitespace trimmed", "\n\n  last\nlest\n\n", []string{"last", "lest"}},
		{"blank lines kept", "last\n\nlest", []string{"last", "", "lest"}},
		{"crlf", "last\r\nlest\r\n", []string{"last", "lest"}},
		{"case kept", "Last\nLEST", []string{"Last", "LEST"}},
		{"empty", "", []string{}},
		{"only whitespace", " \n\t\n", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadNormalize(t *testing.T) {
	decomposed := "cafe\u0301"

	raw, err := Read(strings.NewReader(decomposed), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{decomposed}, raw)

	got, err := Read(strings.NewReader(decomposed), Options{Normalize: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9"}, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReadError(t *testing.T) {
	_, err := Read(failingReader{}, Options{})
	assert.EqualError(t, err, "boom")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("last\nlest\nlist\nlost\nlust\n"), 0o644))

	words, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"last", "lest", "list", "lost", "lust"}, words)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFileEmptyPath(t *testing.T) {
	_, err := ReadFile("", Options{})
	assert.ErrorIs(t, err, ErrEmptyPath)
}
