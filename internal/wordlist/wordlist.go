// Package wordlist loads the master word list and extracts stress letters.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Load reads the master word list, one word per line, skipping blank lines.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found in %s", path)
	}
	return words, nil
}

// StressLetter returns the stressed letter of a word, marked by the first
// uppercase rune. Returns an empty string when the word has no uppercase
// letter; such words are never answered correctly.
func StressLetter(word string) string {
	for _, r := range word {
		if unicode.IsUpper(r) {
			return string(r)
		}
	}
	return ""
}
