package service

// UserRecord хранит состояние одного пользователя: очередь слов, размер
// проверки и текущую проверку, если она идет.
type UserRecord struct {
	Queue []string    `json:"queue"`
	Rate  int         `json:"rate"`
	Quiz  *ActiveQuiz `json:"quiz"`
	Stats Stats       `json:"stats"`
}

// ActiveQuiz описывает идущую проверку: набор слов и позицию в нем.
type ActiveQuiz struct {
	Words []string `json:"words"`
	Index int      `json:"index"`
}

// Stats считает ответы пользователя за все время.
type Stats struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// NewUserRecord создает запись с полной копией списка слов.
func NewUserRecord(master []string, rate int) *UserRecord {
	queue := make([]string, len(master))
	copy(queue, master)
	return &UserRecord{
		Queue: queue,
		Rate:  rate,
	}
}
