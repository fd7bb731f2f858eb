package quiz

// Default возвращает встроенный набор вопросов.
func Default() *Quiz {
	qz := New()

	qz.AddQuestion(MustMultipleChoice(
		"What is the capital of Pakistan?",
		[]string{"Berlin", "Lahore", "Jhelum", "Islamabad"},
		4,
	))
	qz.AddQuestion(NewTrueFalse("Is the sun a star?", true))
	qz.AddQuestion(MustMultipleChoice(
		"Which is the largest ocean in the world?",
		[]string{"Pacific Ocean", "Indian Ocean", "Atlantic Ocean", "Arctic Ocean"},
		1,
	))
	qz.AddQuestion(NewTrueFalse("Is C++ a programming language?", true))
	qz.AddQuestion(MustMultipleChoice(
		"What is the color of the sky?",
		[]string{"Red", "Blue", "Green"},
		2,
	))
	qz.AddQuestion(NewTrueFalse("Is water wet?", true))

	return qz
}
