package results

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/letsssgooo/quizmaster/internal/quiz"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/letsssgooo/quizmaster/internal/results Store

// Store определяет интерфейс для хранения результатов прохождений.
type Store interface {
	// Save дописывает запись о прохождении.
	Save(ctx context.Context, rec Record) error

	// List возвращает все сохранённые записи в порядке добавления.
	List(ctx context.Context) ([]Record, error)

	// Location возвращает человекочитаемое место хранения.
	Location() string
}

// Record — запись о завершённом прохождении.
type Record struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	Total    int       `json:"total,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}

// NewRecord создаёт запись по результату квиза.
func NewRecord(res *quiz.Result, now time.Time) Record {
	return Record{
		ID:       uuid.NewString(),
		Name:     res.PlayerName,
		Score:    res.Score,
		Total:    res.Total,
		PlayedAt: now.UTC(),
	}
}

// Format — формат файла с результатами.
type Format string

const (
	// FormatText — две строки на запись: "Player: <name>" и "Score: <score>".
	FormatText Format = "text"
	// FormatJSONL — один JSON объект на строку.
	FormatJSONL Format = "jsonl"
)

// ParseFormat разбирает название формата без учёта регистра.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSONL:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ошибки хранилища
var (
	ErrSaveFailed    = errors.New("failed to save quiz results")
	ErrCorruptRecord = errors.New("corrupt result record")
	ErrUnknownFormat = errors.New("unknown results format")
	ErrMultilineName = errors.New("player name must be a single line in text format")
)
