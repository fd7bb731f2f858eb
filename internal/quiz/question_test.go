package quiz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMultipleChoice_Valid(t *testing.T) {
	q, err := NewMultipleChoice("capital?", []string{"A", "B", "C", "Islamabad"}, 4)
	require.NoError(t, err)
	require.NotNil(t, q)

	assert.Equal(t, "capital?", q.Prompt())
	assert.Equal(t, []string{"A", "B", "C", "Islamabad"}, q.Options())
	assert.Equal(t, 4, q.Correct())
}

func TestNewMultipleChoice_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		prompt  string
		options []string
		correct int
		err     error
	}{
		{
			name:    "empty prompt",
			prompt:  "",
			options: []string{"A", "B"},
			correct: 1,
			err:     ErrEmptyPrompt,
		},
		{
			name:    "too few options",
			prompt:  "Question?",
			options: []string{"A"},
			correct: 1,
			err:     ErrTooFewOptions,
		},
		{
			name:    "correct index zero",
			prompt:  "Question?",
			options: []string{"A", "B", "C"},
			correct: 0,
			err:     ErrCorrectOutOfRange,
		},
		{
			name:    "correct index negative",
			prompt:  "Question?",
			options: []string{"A", "B", "C"},
			correct: -1,
			err:     ErrCorrectOutOfRange,
		},
		{
			name:    "correct index out of range",
			prompt:  "Question?",
			options: []string{"A", "B", "C"},
			correct: 4,
			err:     ErrCorrectOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := NewMultipleChoice(tc.prompt, tc.options, tc.correct)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, q)
		})
	}
}

func TestNewMultipleChoice_EmptyOption(t *testing.T) {
	q, err := NewMultipleChoice("Question?", []string{"A", ""}, 1)
	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestMustMultipleChoice_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustMultipleChoice("Question?", []string{"A", "B"}, 3)
	})
}

func TestMultipleChoice_OwnsOptions(t *testing.T) {
	options := []string{"A", "B", "C"}
	q, err := NewMultipleChoice("Question?", options, 2)
	require.NoError(t, err)

	options[1] = "changed"
	assert.Equal(t, "B", q.Options()[1])

	q.Options()[0] = "changed"
	assert.Equal(t, "A", q.Options()[0])
}

func TestMultipleChoice_CheckAnswer(t *testing.T) {
	options := []string{"A", "B", "C", "D"}

	for correct := 1; correct <= len(options); correct++ {
		q := MustMultipleChoice("Question?", options, correct)

		assert.True(t, q.CheckAnswer(correct))
		for choice := 1; choice <= len(options); choice++ {
			if choice != correct {
				assert.False(t, q.CheckAnswer(choice), "correct=%d choice=%d", correct, choice)
			}
		}

		assert.False(t, q.CheckAnswer(0))
		assert.False(t, q.CheckAnswer(-correct))
		assert.False(t, q.CheckAnswer(len(options)+1))
	}
}

func TestMultipleChoice_Display(t *testing.T) {
	q := MustMultipleChoice("What is the color of the sky?", []string{"Red", "Blue", "Green"}, 2)

	var buf bytes.Buffer
	q.Display(&buf)

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[0]), "What is the color of the sky?")
	assert.Contains(t, string(lines[1]), "1. Red")
	assert.Contains(t, string(lines[2]), "2. Blue")
	assert.Contains(t, string(lines[3]), "3. Green")
}

func TestTrueFalse_CheckAnswer(t *testing.T) {
	testCases := []struct {
		name   string
		answer bool
		choice int
		want   bool
	}{
		{name: "true answered 1", answer: true, choice: 1, want: true},
		{name: "true answered 0", answer: true, choice: 0, want: false},
		{name: "true answered 2", answer: true, choice: 2, want: false},
		{name: "true answered -5", answer: true, choice: -5, want: false},
		{name: "false answered 1", answer: false, choice: 1, want: false},
		{name: "false answered 0", answer: false, choice: 0, want: true},
		{name: "false answered 2", answer: false, choice: 2, want: true},
		{name: "false answered -5", answer: false, choice: -5, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewTrueFalse("Is the sun a star?", tc.answer)
			assert.Equal(t, tc.want, q.CheckAnswer(tc.choice))
		})
	}
}

func TestTrueFalse_Display(t *testing.T) {
	q := NewTrueFalse("Is water wet?", true)

	var buf bytes.Buffer
	q.Display(&buf)

	assert.Contains(t, buf.String(), "Is water wet? (1 for True / 0 for False)")
	assert.Equal(t, "Is water wet?", q.Prompt())
	assert.True(t, q.Answer())
}
