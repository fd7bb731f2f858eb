package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/letsssgooo/quizmaster/internal/quiz"
)

// Input читает ввод игрока построчно.
type Input struct {
	r *bufio.Reader
}

// NewInput создаёт Input поверх r.
func NewInput(r io.Reader) *Input {
	return &Input{r: bufio.NewReader(r)}
}

// ReadLine читает строку без пробелов по краям.
// Последняя строка без перевода строки тоже считается строкой.
func (in *Input) ReadLine() (string, error) {
	line, err := in.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	return strings.TrimSpace(line), nil
}

// ReadAnswer читает строку и разбирает первое слово как целое число.
func (in *Input) ReadAnswer() (int, error) {
	line, err := in.ReadLine()
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty input", quiz.ErrMalformedAnswer)
	}

	choice, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", quiz.ErrMalformedAnswer, fields[0])
	}

	return choice, nil
}
