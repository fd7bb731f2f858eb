package quiz

import (
	"errors"
	"fmt"
	"io"

	"github.com/letsssgooo/quizmaster/internal/player"
)

// Question определяет общий контракт вопросов квиза.
// Реализаций ровно две: MultipleChoice и TrueFalse.
type Question interface {
	// Prompt возвращает текст вопроса.
	Prompt() string

	// Display выводит вопрос (и варианты ответа, если они есть) в w.
	Display(w io.Writer)

	// CheckAnswer проверяет, совпадает ли выбор игрока с правильным ответом.
	CheckAnswer(choice int) bool
}

// AnswerReader читает ответы игрока.
type AnswerReader interface {
	// ReadAnswer читает один числовой ответ.
	// Возвращает ErrMalformedAnswer, если ввод не является числом.
	ReadAnswer() (int, error)
}

// View отображает ход квиза. Квиз не зависит от конкретного вывода.
type View interface {
	// Divider выводит разделитель между вопросами.
	Divider()

	// PlayerStatus показывает имя и счёт игрока.
	PlayerStatus(p *player.Player)

	// Question показывает вопрос и приглашение к вводу.
	Question(idx int, q Question)

	// Retry сообщает, что ответ не распознан и его нужно ввести снова.
	Retry()

	// Feedback сообщает, верен ли ответ.
	Feedback(correct bool)

	// Pause делает косметическую паузу после ответа.
	Pause()

	// Clear очищает экран.
	Clear()

	// Completed показывает итог прохождения.
	Completed(res *Result)
}

// Answer представляет ответ игрока на вопрос.
type Answer struct {
	QuestionIdx int
	Choice      int
	Valid       bool
	IsCorrect   bool
}

// Result содержит результат одного прохождения квиза.
type Result struct {
	PlayerName string
	Score      int
	Total      int
	Answers    []Answer
}

// Percentage возвращает долю правильных ответов в процентах.
func (r *Result) Percentage() int {
	if r.Total == 0 {
		return 0
	}

	return r.Score * 100 / r.Total
}

// String возвращает счёт в виде "score/total".
func (r *Result) String() string {
	return fmt.Sprintf("%d/%d", r.Score, r.Total)
}

// Ошибки квиза
var (
	ErrEmptyPrompt       = errors.New("question prompt is empty")
	ErrTooFewOptions     = errors.New("amount of options must be at least two")
	ErrCorrectOutOfRange = errors.New("index of correct option is out of range")
	ErrMalformedAnswer   = errors.New("answer is not a number")
	ErrNoQuestions       = errors.New("quiz has no questions")
	ErrNilPlayer         = errors.New("player object is nil")
	ErrNilAnswerReader   = errors.New("answer reader is nil")
	ErrNilView           = errors.New("view is nil")
)

// maxAnswerAttempts — сколько раз читается нераспознанный ответ, прежде чем он считается неверным.
const maxAnswerAttempts = 2
