package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSkipsBlankLinesAndTrims(t *testing.T) {
	path := writeWords(t, "Apple\n\n  banaNa  \n\nchErry\n")

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banaNa", "chErry"}, words)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeWords(t, "\n\n  \n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestStressLetter(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"Apple", "A"},
		{"banaNa", "N"},
		{"молокО", "О"},
		{"щавЕль", "Е"},
		{"nothing", ""},
		{"", ""},
		{"TWo", "T"}, // malformed entry: first uppercase wins
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, StressLetter(tt.word))
		})
	}
}
