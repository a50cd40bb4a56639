package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/PoluyanbIch/StressBot/internal/config"
	"github.com/PoluyanbIch/StressBot/internal/scheduler"
	"github.com/PoluyanbIch/StressBot/internal/storage"
	"github.com/PoluyanbIch/StressBot/internal/telegram"
	"github.com/PoluyanbIch/StressBot/internal/wordlist"
)

const (
	configFile   = "config.yaml"
	tokenFile    = "BOT_TOKEN"
	wordsFile    = "words.txt"
	userDataFile = "user_data.json"
)

func main() {
	logger := logrus.WithField("component", "stressbot")

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}

	token, err := config.LoadToken(tokenFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load bot token")
	}

	words, err := wordlist.Load(wordsFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load word list")
	}

	store, err := storage.Open(userDataFile, words, cfg.DefaultRate)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open user store")
	}

	bot, err := telegram.NewBot(token, cfg, store, words, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create bot")
	}

	logger.Infof("Loaded %d words, %d known users", len(words), store.Len())

	sched := scheduler.New(cfg, store, words, bot, logger)
	go sched.Run(context.Background())

	logger.Info("🤖 Bot is starting...")
	bot.Start()
}
