package quiz

import "fmt"

// validateMultipleChoice проверяет на корректность вопрос с вариантами ответа
func validateMultipleChoice(prompt string, options []string, correct int) error {
	if prompt == "" {
		return ErrEmptyPrompt
	}

	if len(options) < 2 {
		return fmt.Errorf("%w, got %d", ErrTooFewOptions, len(options))
	}

	for i, option := range options {
		if option == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
	}

	if correct < 1 || correct > len(options) {
		return fmt.Errorf("%w, got %d for %d options", ErrCorrectOutOfRange, correct, len(options))
	}

	return nil
}
