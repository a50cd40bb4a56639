package service

import (
	"math/rand"
	"time"
)

// ShuffleWords перемешивает слова в случайном порядке, не изменяя оригинал.
func ShuffleWords(words []string) []string {
	shuffled := make([]string, len(words))
	copy(shuffled, words)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Алгоритм Фишера-Йейтса
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
