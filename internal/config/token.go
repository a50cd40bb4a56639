package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadToken reads the bot token from path, trimming surrounding whitespace.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read bot token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("bot token file %s is empty", path)
	}
	return token, nil
}
