package session

import (
	"errors"
	"time"

	"github.com/letsssgooo/quizmaster/internal/quiz"
	"github.com/letsssgooo/quizmaster/internal/results"
)

// State — состояние цикла игры.
type State int

const (
	StateSetup State = iota
	StatePlaying
	StateReport
	StateDone
)

// String возвращает название состояния.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateReport:
		return "report"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Input читает имя игрока, ответы и выбор о повторной игре.
type Input interface {
	quiz.AnswerReader

	// ReadLine читает одну строку без пробелов по краям.
	ReadLine() (string, error)
}

// Screen отображает экраны сессии.
type Screen interface {
	quiz.View

	// Stars рисует декоративные звёзды.
	Stars()

	// Banner выводит приветствие.
	Banner()

	// Prompt выводит приглашение к вводу.
	Prompt(text string)

	// Announce выводит информационную строку.
	Announce(text string)

	// FinalScore показывает итоговый счёт игрока.
	FinalScore(res *quiz.Result)

	// Saved сообщает, куда сохранён результат.
	Saved(location string)

	// SaveFailed сообщает об ошибке сохранения.
	SaveFailed(err error)

	// ReplayPrompt спрашивает, сыграть ли ещё раз.
	ReplayPrompt()

	// InvalidReplay сообщает о неверном ответе на вопрос о повторе.
	InvalidReplay()

	// Goodbye прощается с игроком.
	Goodbye()
}

// Config содержит зависимости сессии.
type Config struct {
	Quiz   *quiz.Quiz
	Input  Input
	Screen Screen
	Store  results.Store

	// Now по умолчанию time.Now.
	Now func() time.Time
}

// Ошибки сессии
var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNilQuiz     = errors.New("quiz cannot be nil")
	ErrNilInput    = errors.New("input cannot be nil")
	ErrNilScreen   = errors.New("screen cannot be nil")
	ErrNilStore    = errors.New("results store cannot be nil")
	ErrPersistence = errors.New("some quiz results were not saved")
	ErrInputClosed = errors.New("input closed")
)
