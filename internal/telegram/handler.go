package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/PoluyanbIch/StressBot/internal/config"
	"github.com/PoluyanbIch/StressBot/internal/service"
	"github.com/PoluyanbIch/StressBot/internal/storage"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.Config
	store  *storage.Store
	words  []string
	logger *logrus.Entry
}

func NewBot(token string, cfg *config.Config, store *storage.Store, words []string, logger *logrus.Entry) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}

	return &Bot{
		api:    api,
		cfg:    cfg,
		store:  store,
		words:  words,
		logger: logger,
	}, nil
}

// Start запускает цикл обработки входящих сообщений.
func (b *Bot) Start() {
	b.logger.Infof("Authorised on account: %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.Chat.ID, 10)

	switch msg.Command() {
	case "start":
		b.handleStart(msg.Chat.ID, userID)
	case "help":
		b.sendMessage(msg.Chat.ID, b.cfg.HelpMessage)
	case "rate":
		b.handleRate(msg.Chat.ID, userID, msg.CommandArguments())
	case "quiz":
		b.handleQuiz(msg.Chat.ID, userID)
	case "cancel":
		b.handleCancel(msg.Chat.ID, userID)
	case "stats":
		b.handleStats(msg.Chat.ID, userID)
	default:
		// Все остальное, включая неизвестные команды, считается ответом
		// на текущее слово.
		b.handleAnswer(msg.Chat.ID, userID, msg.Text)
	}
}

func (b *Bot) handleStart(chatID int64, userID string) {
	if err := b.store.Update(userID, func(*service.UserRecord) {}); err != nil {
		b.logger.WithError(err).Error("Failed to save user data")
	}

	msg := tgbotapi.NewMessage(chatID, b.cfg.StartMessage)
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/start"),
			tgbotapi.NewKeyboardButton("/help"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/rate"),
			tgbotapi.NewKeyboardButton("/quiz"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.WithError(err).Error("Failed to send start message")
	}
}

func (b *Bot) handleRate(chatID int64, userID string, args string) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 1 {
		b.sendMessage(chatID, "Используйте: /rate число (например, /rate 7)")
		return
	}

	if err := b.store.Update(userID, func(rec *service.UserRecord) { rec.Rate = n }); err != nil {
		b.logger.WithError(err).Error("Failed to save user data")
	}
	b.sendMessage(chatID, fmt.Sprintf("Количество слов для проверки установлено: %d", n))
}

func (b *Bot) handleQuiz(chatID int64, userID string) {
	var (
		started bool
		first   string
	)
	err := b.store.Update(userID, func(rec *service.UserRecord) {
		started = service.StartQuiz(rec, b.words, b.cfg.ShuffleOnRefill)
		if started {
			first, _ = service.CurrentWord(rec)
		}
	})
	if err != nil {
		b.logger.WithError(err).Error("Failed to save user data")
	}

	if !started {
		b.sendMessage(chatID, "У вас уже идёт проверка. Введите ответ или используйте /cancel для отмены.")
		return
	}
	if first == "" {
		b.sendMessage(chatID, b.cfg.QuizComplete)
		return
	}
	b.sendMessage(chatID, b.cfg.Question(first))
}

func (b *Bot) handleCancel(chatID int64, userID string) {
	cancelled := false
	_, err := b.store.UpdateIfExists(userID, func(rec *service.UserRecord) bool {
		cancelled = service.CancelQuiz(rec)
		return cancelled
	})
	if err != nil {
		b.logger.WithError(err).Error("Failed to save user data")
	}

	if cancelled {
		b.sendMessage(chatID, "Тест прерван.")
	} else {
		b.sendMessage(chatID, "Нет активного теста.")
	}
}

func (b *Bot) handleStats(chatID int64, userID string) {
	var stats service.Stats
	if err := b.store.Update(userID, func(rec *service.UserRecord) { stats = rec.Stats }); err != nil {
		b.logger.WithError(err).Error("Failed to save user data")
	}

	percent := 0
	if stats.Answered > 0 {
		percent = stats.Correct * 100 / stats.Answered
	}
	b.sendMessage(chatID, b.cfg.StatsMessage(stats.Answered, stats.Correct, percent))
}

func (b *Bot) handleAnswer(chatID int64, userID string, text string) {
	var (
		grade  service.Grade
		graded bool
		next   string
	)
	_, err := b.store.UpdateIfExists(userID, func(rec *service.UserRecord) bool {
		grade, graded = service.GradeAnswer(rec, text)
		if graded && !grade.Done {
			next, _ = service.CurrentWord(rec)
		}
		return graded
	})
	if err != nil {
		b.logger.WithError(err).Error("Failed to save user data")
	}
	if !graded {
		// Свободный текст без идущей проверки игнорируется.
		return
	}

	if grade.Correct {
		b.sendMessage(chatID, b.cfg.CorrectText)
	} else {
		b.sendMessage(chatID, b.cfg.Incorrect(grade.Expected))
	}

	if grade.Done {
		b.sendMessage(chatID, b.cfg.QuizComplete)
	} else {
		b.sendMessage(chatID, b.cfg.Question(next))
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}

// Send доставляет текст пользователю по строковому id. Используется
// планировщиком ежедневной проверки.
func (b *Bot) Send(userID string, text string) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
