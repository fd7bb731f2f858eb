package slogcustom

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCustomHandler(&buf, slog.LevelInfo, true))

	log.Debug("hidden")
	log.Info("quiz results saved", "player", "Ali", "score", 4)
	log.Error("cannot save quiz results")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO: quiz results saved player=Ali score=4")
	assert.Contains(t, out, "ERROR: cannot save quiz results")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestCustomHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCustomHandler(&buf, slog.LevelDebug, true)).
		With("session", 1).
		WithGroup("quiz")

	log.Debug("answer submitted", "question", 2)

	assert.Contains(t, buf.String(), "DEBUG: answer submitted session=1 quiz.question=2")
}
