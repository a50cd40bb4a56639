package service

import (
	"strings"

	"github.com/PoluyanbIch/StressBot/internal/wordlist"
)

// Grade описывает результат проверки одного ответа.
type Grade struct {
	Correct  bool
	Expected string
	Done     bool
}

// StartQuiz запускает проверку: забирает первые rate слов из очереди
// пользователя. Если слов в очереди меньше, чем rate, очередь пополняется
// полной копией списка слов (дубликаты допустимы). Возвращает false, если
// проверка уже идет.
func StartQuiz(rec *UserRecord, master []string, shuffle bool) bool {
	if rec.Quiz != nil {
		return false
	}

	if len(rec.Queue) < rec.Rate {
		refill := master
		if shuffle {
			refill = ShuffleWords(master)
		}
		rec.Queue = append(rec.Queue, refill...)
	}

	n := rec.Rate
	if n > len(rec.Queue) {
		n = len(rec.Queue)
	}
	if n == 0 {
		return true
	}

	batch := make([]string, n)
	copy(batch, rec.Queue[:n])
	rec.Queue = rec.Queue[n:]
	rec.Quiz = &ActiveQuiz{Words: batch, Index: 0}
	return true
}

// GradeAnswer сверяет ответ с ударной буквой текущего слова и сдвигает
// курсор на одно слово вперед. Неверно отвеченное слово возвращается в конец
// очереди. Возвращает false, если проверка не идет.
func GradeAnswer(rec *UserRecord, answer string) (Grade, bool) {
	if rec.Quiz == nil {
		return Grade{}, false
	}

	word := rec.Quiz.Words[rec.Quiz.Index]
	expected := wordlist.StressLetter(word)
	got := strings.ToUpper(strings.TrimSpace(answer))

	grade := Grade{Expected: expected}
	if expected != "" && got == expected {
		grade.Correct = true
		rec.Stats.Correct++
	} else {
		rec.Queue = append(rec.Queue, word)
	}
	rec.Stats.Answered++

	rec.Quiz.Index++
	if rec.Quiz.Index >= len(rec.Quiz.Words) {
		rec.Quiz = nil
		grade.Done = true
	}
	return grade, true
}

// CancelQuiz прерывает идущую проверку. Возвращает false, если прерывать
// нечего.
func CancelQuiz(rec *UserRecord) bool {
	if rec.Quiz == nil {
		return false
	}
	rec.Quiz = nil
	return true
}

// CurrentWord возвращает слово, на котором стоит курсор идущей проверки.
func CurrentWord(rec *UserRecord) (string, bool) {
	if rec.Quiz == nil || rec.Quiz.Index >= len(rec.Quiz.Words) {
		return "", false
	}
	return rec.Quiz.Words[rec.Quiz.Index], true
}
