package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/letsssgooo/quizmaster/internal/player"
	"github.com/letsssgooo/quizmaster/internal/quiz"
	"github.com/letsssgooo/quizmaster/internal/results"
)

// Session проводит игроков через квиз, пока они хотят играть.
type Session struct {
	quiz   *quiz.Quiz
	input  Input
	screen Screen
	store  results.Store
	now    func() time.Time

	state   State
	history []quiz.Result
	saveErr error
}

// New создаёт сессию.
func New(cfg *Config) (*Session, error) {
	switch {
	case cfg == nil:
		return nil, ErrNilConfig
	case cfg.Quiz == nil:
		return nil, ErrNilQuiz
	case cfg.Input == nil:
		return nil, ErrNilInput
	case cfg.Screen == nil:
		return nil, ErrNilScreen
	case cfg.Store == nil:
		return nil, ErrNilStore
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		quiz:   cfg.Quiz,
		input:  cfg.Input,
		screen: cfg.Screen,
		store:  cfg.Store,
		now:    now,
		state:  StateSetup,
	}, nil
}

// State возвращает текущее состояние.
func (s *Session) State() State {
	return s.state
}

// History возвращает результаты всех завершённых прохождений.
func (s *Session) History() []quiz.Result {
	history := make([]quiz.Result, len(s.history))
	copy(history, s.history)

	return history
}

// Run крутит цикл setup -> playing -> report, пока игрок не откажется от повтора.
// Ошибка сохранения не прерывает игру, но в конце возвращается ErrPersistence.
func (s *Session) Run(ctx context.Context) error {
	var (
		p   *player.Player
		res *quiz.Result
		err error
	)

	for {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("session interrupted in state %s: %w", s.state, err)
		}

		switch s.state {
		case StateSetup:
			p, err = s.setup()
			if err != nil {
				return err
			}
			s.state = StatePlaying

		case StatePlaying:
			res, err = s.quiz.Start(ctx, p, s.input, s.screen)
			if err != nil {
				return wrapInput(fmt.Errorf("quiz for %q stopped: %w", p.Name(), err))
			}
			s.history = append(s.history, *res)
			s.state = StateReport

		case StateReport:
			s.report(ctx, res)

			again, err := s.askReplay(ctx)
			if err != nil {
				return err
			}

			if again {
				s.state = StateSetup
			} else {
				s.state = StateDone
			}

		case StateDone:
			s.screen.Goodbye()
			slog.Info("session finished", "playthroughs", len(s.history))

			if s.saveErr != nil {
				return fmt.Errorf("%w: %w", ErrPersistence, s.saveErr)
			}

			return nil
		}
	}
}

func (s *Session) setup() (*player.Player, error) {
	s.screen.Stars()
	s.screen.Banner()
	s.screen.Prompt("Enter your name: ")

	name, err := s.input.ReadLine()
	if err != nil {
		return nil, wrapInput(fmt.Errorf("cannot read player name: %w", err))
	}

	s.screen.Clear()
	s.screen.Stars()
	s.screen.Announce("Let's start the quiz!")

	slog.Debug("player created", "name", name)

	return player.New(name), nil
}

func (s *Session) report(ctx context.Context, res *quiz.Result) {
	s.screen.Stars()
	s.screen.FinalScore(res)

	rec := results.NewRecord(res, s.now())
	if err := s.store.Save(ctx, rec); err != nil {
		slog.Error("cannot save quiz results", "player", rec.Name, "err", err)
		s.screen.SaveFailed(err)
		s.saveErr = err
		return
	}

	slog.Info("quiz results saved",
		"id", rec.ID,
		"player", rec.Name,
		"score", rec.Score,
		"total", rec.Total,
		"location", s.store.Location(),
	)
	s.screen.Saved(s.store.Location())
}

// askReplay спрашивает Y/N без учёта регистра, пока не получит один из них.
func (s *Session) askReplay(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		s.screen.ReplayPrompt()

		line, err := s.input.ReadLine()
		if err != nil {
			return false, wrapInput(fmt.Errorf("cannot read replay choice: %w", err))
		}

		s.screen.Clear()
		s.screen.Stars()

		switch strings.ToUpper(line) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		default:
			slog.Debug("invalid replay choice", "input", line)
			s.screen.InvalidReplay()
		}
	}
}

func wrapInput(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	return err
}
