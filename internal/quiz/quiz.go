package quiz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/letsssgooo/quizmaster/internal/player"
)

// Quiz — упорядоченный набор вопросов. Порядок добавления совпадает с порядком показа.
// Квиз не хранит состояние игрока и переиспользуется между прохождениями.
type Quiz struct {
	questions []Question
}

// New создаёт пустой квиз.
func New() *Quiz {
	return &Quiz{}
}

// AddQuestion добавляет вопрос в конец квиза.
func (qz *Quiz) AddQuestion(q Question) {
	qz.questions = append(qz.questions, q)
}

// Len возвращает количество вопросов.
func (qz *Quiz) Len() int {
	return len(qz.questions)
}

// Questions возвращает копию списка вопросов.
func (qz *Quiz) Questions() []Question {
	questions := make([]Question, len(qz.questions))
	copy(questions, qz.questions)

	return questions
}

// Start проводит игрока по всем вопросам по порядку.
// За каждый правильный ответ счёт игрока увеличивается на 1.
// Result.Score — число правильных ответов в этом прохождении; у игрока с ненулевым
// начальным счётом p.Score() больше на этот начальный счёт.
// При ошибке чтения ввода возвращает частичный результат и ошибку.
func (qz *Quiz) Start(ctx context.Context, p *player.Player, in AnswerReader, view View) (*Result, error) {
	switch {
	case p == nil:
		return nil, ErrNilPlayer
	case in == nil:
		return nil, ErrNilAnswerReader
	case view == nil:
		return nil, ErrNilView
	case len(qz.questions) == 0:
		return nil, ErrNoQuestions
	}

	res := &Result{
		PlayerName: p.Name(),
		Total:      len(qz.questions),
		Answers:    make([]Answer, 0, len(qz.questions)),
	}

	for i, q := range qz.questions {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("quiz interrupted on question %d: %w", i+1, err)
		}

		if i != 0 {
			view.Divider()
		}

		view.PlayerStatus(p)
		view.Question(i, q)

		choice, valid, err := readAnswer(in, view)
		if err != nil {
			return res, fmt.Errorf("cannot read answer to question %d: %w", i+1, err)
		}

		answer := Answer{
			QuestionIdx: i,
			Choice:      choice,
			Valid:       valid,
		}
		if valid && q.CheckAnswer(choice) {
			answer.IsCorrect = true
			res.Score++
			p.IncreaseScore(1)
		}

		slog.Debug("answer submitted",
			"player", p.Name(),
			"question", i+1,
			"choice", choice,
			"valid", valid,
			"correct", answer.IsCorrect,
		)

		view.Feedback(answer.IsCorrect)
		res.Answers = append(res.Answers, answer)

		view.Pause()
		view.Clear()
	}

	view.Completed(res)

	return res, nil
}

// readAnswer читает ответ, давая одну повторную попытку при нечисловом вводе.
// Если и она не удалась, ответ считается невалидным.
func readAnswer(in AnswerReader, view View) (int, bool, error) {
	for attempt := 1; attempt <= maxAnswerAttempts; attempt++ {
		choice, err := in.ReadAnswer()
		if err == nil {
			return choice, true, nil
		}

		if !errors.Is(err, ErrMalformedAnswer) {
			return 0, false, err
		}

		if attempt < maxAnswerAttempts {
			view.Retry()
		}
	}

	return 0, false, nil
}
