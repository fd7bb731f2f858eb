package quiz

import (
	"fmt"
	"io"
)

// MultipleChoice — вопрос с несколькими вариантами ответа.
type MultipleChoice struct {
	prompt  string
	options []string
	correct int // 1-based
}

// NewMultipleChoice создаёт вопрос с вариантами ответа.
// correct — номер правильного варианта, начиная с 1.
func NewMultipleChoice(prompt string, options []string, correct int) (*MultipleChoice, error) {
	if err := validateMultipleChoice(prompt, options, correct); err != nil {
		return nil, fmt.Errorf("cannot create question %q: %w", prompt, err)
	}

	owned := make([]string, len(options))
	copy(owned, options)

	return &MultipleChoice{
		prompt:  prompt,
		options: owned,
		correct: correct,
	}, nil
}

// MustMultipleChoice как NewMultipleChoice, но паникует при ошибке.
func MustMultipleChoice(prompt string, options []string, correct int) *MultipleChoice {
	q, err := NewMultipleChoice(prompt, options, correct)
	if err != nil {
		panic(err)
	}

	return q
}

// Prompt возвращает текст вопроса.
func (q *MultipleChoice) Prompt() string {
	return q.prompt
}

// Options возвращает копию вариантов ответа.
func (q *MultipleChoice) Options() []string {
	options := make([]string, len(q.options))
	copy(options, q.options)

	return options
}

// Correct возвращает номер правильного варианта.
func (q *MultipleChoice) Correct() int {
	return q.correct
}

// Display выводит вопрос и пронумерованные с единицы варианты.
func (q *MultipleChoice) Display(w io.Writer) {
	fmt.Fprintf(w, "%63s\n", q.prompt)
	for i, option := range q.options {
		fmt.Fprintf(w, "%35d. %s\n", i+1, option)
	}
}

// CheckAnswer проверяет ответ.
func (q *MultipleChoice) CheckAnswer(choice int) bool {
	return choice == q.correct
}

// TrueFalse — вопрос с ответом "да" или "нет".
type TrueFalse struct {
	prompt string
	answer bool
}

// NewTrueFalse создаёт вопрос true/false.
func NewTrueFalse(prompt string, answer bool) *TrueFalse {
	return &TrueFalse{
		prompt: prompt,
		answer: answer,
	}
}

// Prompt возвращает текст вопроса.
func (q *TrueFalse) Prompt() string {
	return q.prompt
}

// Answer возвращает правильный ответ.
func (q *TrueFalse) Answer() bool {
	return q.answer
}

// Display выводит вопрос с подсказкой по вводу.
func (q *TrueFalse) Display(w io.Writer) {
	fmt.Fprintf(w, "%50s (1 for True / 0 for False)\n", q.prompt)
}

// CheckAnswer проверяет ответ. 1 означает true, любое другое число — false.
func (q *TrueFalse) CheckAnswer(choice int) bool {
	return (choice == 1) == q.answer
}
