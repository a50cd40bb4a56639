package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRecordCopiesMasterList(t *testing.T) {
	master := []string{"Apple", "banaNa"}
	rec := NewUserRecord(master, 5)

	assert.Equal(t, master, rec.Queue)
	assert.Equal(t, 5, rec.Rate)
	assert.Nil(t, rec.Quiz)

	rec.Queue[0] = "changed"
	assert.Equal(t, "Apple", master[0], "master list must stay untouched")
}

func TestStartQuizDrawsBatchFromQueueFront(t *testing.T) {
	master := []string{"Apple", "banaNa", "chErry"}
	rec := NewUserRecord(master, 2)

	require.True(t, StartQuiz(rec, master, false))
	require.NotNil(t, rec.Quiz)
	assert.Equal(t, []string{"Apple", "banaNa"}, rec.Quiz.Words)
	assert.Equal(t, 0, rec.Quiz.Index)
	assert.Equal(t, []string{"chErry"}, rec.Queue)
}

func TestStartQuizRefusesWhenAlreadyActive(t *testing.T) {
	master := []string{"Apple", "banaNa"}
	rec := NewUserRecord(master, 1)

	require.True(t, StartQuiz(rec, master, false))
	quiz := rec.Quiz

	assert.False(t, StartQuiz(rec, master, false))
	assert.Same(t, quiz, rec.Quiz, "active quiz must stay untouched")
}

func TestStartQuizReplenishesShortQueue(t *testing.T) {
	master := []string{"Apple", "banaNa"}
	rec := NewUserRecord(master, 2)
	rec.Queue = []string{"chErry"}

	require.True(t, StartQuiz(rec, master, false))
	assert.Equal(t, []string{"chErry", "Apple"}, rec.Quiz.Words)
	assert.Equal(t, []string{"banaNa"}, rec.Queue)
}

func TestStartQuizBatchNeverShorterThanRate(t *testing.T) {
	master := []string{"Apple", "banaNa", "chErry"}
	rec := NewUserRecord(master, 3)
	rec.Queue = nil

	require.True(t, StartQuiz(rec, master, false))
	assert.Len(t, rec.Quiz.Words, 3)
}

// Scenario: master = [Apple, banaNa], rate 2. "A" is correct, "x" is wrong
// and re-enqueues banaNa, then the quiz completes.
func TestGradeAnswerFullRound(t *testing.T) {
	master := []string{"Apple", "banaNa"}
	rec := NewUserRecord(master, 2)
	require.True(t, StartQuiz(rec, master, false))

	word, ok := CurrentWord(rec)
	require.True(t, ok)
	assert.Equal(t, "Apple", word)

	grade, ok := GradeAnswer(rec, "A")
	require.True(t, ok)
	assert.True(t, grade.Correct)
	assert.False(t, grade.Done)

	word, ok = CurrentWord(rec)
	require.True(t, ok)
	assert.Equal(t, "banaNa", word)

	grade, ok = GradeAnswer(rec, "x")
	require.True(t, ok)
	assert.False(t, grade.Correct)
	assert.Equal(t, "N", grade.Expected)
	assert.True(t, grade.Done)

	assert.Nil(t, rec.Quiz)
	assert.Equal(t, []string{"banaNa"}, rec.Queue)
	assert.Equal(t, Stats{Answered: 2, Correct: 1}, rec.Stats)
}

func TestGradeAnswerNormalizesCaseAndWhitespace(t *testing.T) {
	master := []string{"Apple"}
	rec := NewUserRecord(master, 1)
	require.True(t, StartQuiz(rec, master, false))

	grade, ok := GradeAnswer(rec, "  a ")
	require.True(t, ok)
	assert.True(t, grade.Correct)
}

func TestGradeAnswerWordWithoutUppercaseIsAlwaysWrong(t *testing.T) {
	master := []string{"nothing"}
	rec := NewUserRecord(master, 1)
	require.True(t, StartQuiz(rec, master, false))

	grade, ok := GradeAnswer(rec, "")
	require.True(t, ok)
	assert.False(t, grade.Correct)
	assert.Equal(t, "", grade.Expected)
	assert.Equal(t, []string{"nothing"}, rec.Queue)
}

func TestGradeAnswerWithoutActiveQuiz(t *testing.T) {
	rec := NewUserRecord([]string{"Apple"}, 1)

	_, ok := GradeAnswer(rec, "A")
	assert.False(t, ok)
}

func TestCursorAdvancesByOnePerAnswer(t *testing.T) {
	master := []string{"Apple", "banaNa", "chErry"}
	rec := NewUserRecord(master, 3)
	require.True(t, StartQuiz(rec, master, false))

	for i := 1; i <= 2; i++ {
		_, ok := GradeAnswer(rec, "zzz")
		require.True(t, ok)
		require.NotNil(t, rec.Quiz)
		assert.Equal(t, i, rec.Quiz.Index)
	}

	grade, ok := GradeAnswer(rec, "zzz")
	require.True(t, ok)
	assert.True(t, grade.Done)
	assert.Nil(t, rec.Quiz)
}

// A wrongly answered word goes to the back of the queue and must come up
// again in a later batch.
func TestWrongAnswerRecursInLaterBatch(t *testing.T) {
	master := []string{"Apple", "banaNa"}
	rec := NewUserRecord(master, 1)
	require.True(t, StartQuiz(rec, master, false))

	grade, ok := GradeAnswer(rec, "x")
	require.True(t, ok)
	require.False(t, grade.Correct)

	seen := false
	for i := 0; i < 10 && !seen; i++ {
		require.True(t, StartQuiz(rec, master, false))
		word, ok := CurrentWord(rec)
		require.True(t, ok)
		if word == "Apple" {
			seen = true
		}
		_, ok = GradeAnswer(rec, "wrong answer")
		require.True(t, ok)
	}
	assert.True(t, seen, "re-enqueued word must reappear")
}

func TestCancelQuiz(t *testing.T) {
	master := []string{"Apple"}
	rec := NewUserRecord(master, 1)

	assert.False(t, CancelQuiz(rec), "nothing to cancel")

	require.True(t, StartQuiz(rec, master, false))
	assert.True(t, CancelQuiz(rec))
	assert.Nil(t, rec.Quiz)
	assert.False(t, CancelQuiz(rec))
}

func TestCurrentWordWithoutQuiz(t *testing.T) {
	rec := NewUserRecord([]string{"Apple"}, 1)

	_, ok := CurrentWord(rec)
	assert.False(t, ok)
}

func TestShuffleWordsKeepsAllWords(t *testing.T) {
	words := []string{"Apple", "banaNa", "chErry", "dAte", "Elderberry"}

	shuffled := ShuffleWords(words)
	require.Len(t, shuffled, len(words))
	assert.Equal(t, []string{"Apple", "banaNa", "chErry", "dAte", "Elderberry"}, words,
		"input must stay untouched")

	sortedIn := append([]string(nil), words...)
	sortedOut := append([]string(nil), shuffled...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	assert.Equal(t, sortedIn, sortedOut)
}
