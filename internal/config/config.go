// Package config loads bot settings and message templates from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config carries bot settings and message templates. Every field falls back
// to a built-in default when absent from the file.
type Config struct {
	DefaultRate     int    `yaml:"default_rate"`
	DailyQuizTime   string `yaml:"daily_quiz_time"`
	ShuffleOnRefill bool   `yaml:"shuffle_on_refill"`

	StartMessage   string `yaml:"start_message"`
	HelpMessage    string `yaml:"help_message"`
	QuestionText   string `yaml:"question_text"`
	CorrectText    string `yaml:"correct_text"`
	IncorrectText  string `yaml:"incorrect_text"`
	QuizComplete   string `yaml:"quiz_complete"`
	DailyQuizStart string `yaml:"daily_quiz_start"`
	StatsText      string `yaml:"stats_text"`
}

const defaultHelpMessage = "Доступные команды:\n" +
	"/start - начать работу и показать меню\n" +
	"/help - список команд\n" +
	"/rate <число> - сколько слов в одной проверке\n" +
	"/quiz - начать проверку\n" +
	"/cancel - прервать проверку\n" +
	"/stats - ваша статистика"

// Load reads the config file and fills in defaults for missing keys. A
// missing file is a startup failure, not a fallback case.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if _, err := time.Parse("15:04", cfg.DailyQuizTime); err != nil {
		return nil, fmt.Errorf("invalid daily_quiz_time %q: %w", cfg.DailyQuizTime, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DefaultRate < 1 {
		c.DefaultRate = 5
	}
	if c.DailyQuizTime == "" {
		c.DailyQuizTime = "09:00"
	}
	if c.StartMessage == "" {
		c.StartMessage = "Привет!"
	}
	if c.HelpMessage == "" {
		c.HelpMessage = defaultHelpMessage
	}
	if c.QuestionText == "" {
		c.QuestionText = "Слово: {word}\nВведите ударную букву:"
	}
	if c.CorrectText == "" {
		c.CorrectText = "Верно!"
	}
	if c.IncorrectText == "" {
		c.IncorrectText = "Неверно. Правильный ответ: {correct}"
	}
	if c.QuizComplete == "" {
		c.QuizComplete = "Проверка завершена!"
	}
	if c.DailyQuizStart == "" {
		c.DailyQuizStart = "Начинается ежедневная проверка!"
	}
	if c.StatsText == "" {
		c.StatsText = "Отвечено слов: {answered}\nПравильно: {correct} ({percent}%)"
	}
}

// Question formats the prompt for a word.
func (c *Config) Question(word string) string {
	return strings.ReplaceAll(c.QuestionText, "{word}", word)
}

// Incorrect formats the wrong-answer reply with the expected letter.
func (c *Config) Incorrect(letter string) string {
	return strings.ReplaceAll(c.IncorrectText, "{correct}", letter)
}

// StatsMessage formats the lifetime statistics reply.
func (c *Config) StatsMessage(answered, correct, percent int) string {
	msg := strings.ReplaceAll(c.StatsText, "{answered}", strconv.Itoa(answered))
	msg = strings.ReplaceAll(msg, "{correct}", strconv.Itoa(correct))
	return strings.ReplaceAll(msg, "{percent}", strconv.Itoa(percent))
}
