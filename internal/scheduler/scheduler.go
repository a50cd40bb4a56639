// Package scheduler runs the daily quiz at a configured wall-clock time.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PoluyanbIch/StressBot/internal/config"
	"github.com/PoluyanbIch/StressBot/internal/service"
	"github.com/PoluyanbIch/StressBot/internal/storage"
)

// Sender delivers a text message to a user.
type Sender interface {
	Send(userID string, text string) error
}

// Scheduler starts a quiz for every idle user once a day.
type Scheduler struct {
	cfg    *config.Config
	store  *storage.Store
	words  []string
	sender Sender
	logger *logrus.Entry
}

func New(cfg *config.Config, store *storage.Store, words []string, sender Sender, logger *logrus.Entry) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		store:  store,
		words:  words,
		sender: sender,
		logger: logger,
	}
}

// NextRun returns the next occurrence of the "HH:MM" wall-clock time,
// shifting to tomorrow when today's occurrence has already passed.
func NextRun(now time.Time, hhmm string) (time.Time, error) {
	target, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid daily quiz time %q: %w", hhmm, err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), target.Hour(), target.Minute(), 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next, nil
}

// Run sleeps until the configured time, fires the daily quiz and loops
// forever until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next, err := NextRun(time.Now(), s.cfg.DailyQuizTime)
		if err != nil {
			// Config validation makes this unreachable, but a broken
			// schedule must not spin the loop.
			s.logger.WithError(err).Error("Failed to compute next daily quiz time")
			return
		}
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Info("Daily quiz scheduled")

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		s.Fire()
	}
}

// Fire starts a quiz for every user without an active one and sends the
// start notice plus the first prompt. A failure for one user is logged and
// never aborts the rest of the cycle.
func (s *Scheduler) Fire() {
	for _, userID := range s.store.UserIDs() {
		var (
			started bool
			first   string
		)
		_, err := s.store.UpdateIfExists(userID, func(rec *service.UserRecord) bool {
			started = service.StartQuiz(rec, s.words, s.cfg.ShuffleOnRefill)
			if started {
				first, _ = service.CurrentWord(rec)
			}
			return started
		})
		if err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Error("Failed to save user data")
			continue
		}
		if !started {
			// Пользователь уже проходит проверку, пропускаем.
			continue
		}

		if err := s.sender.Send(userID, s.cfg.DailyQuizStart); err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Error("Failed to send daily quiz notice")
			continue
		}
		if first == "" {
			continue
		}
		if err := s.sender.Send(userID, s.cfg.Question(first)); err != nil {
			s.logger.WithError(err).WithField("user_id", userID).Error("Failed to send daily quiz question")
		}
	}
}
