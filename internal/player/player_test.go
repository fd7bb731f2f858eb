package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_StartsAtZero(t *testing.T) {
	p := New("Ali")

	assert.Equal(t, "Ali", p.Name())
	assert.Equal(t, 0, p.Score())
}

func TestNew_AcceptsAnyName(t *testing.T) {
	for _, name := range []string{"", "  ", "Shahmeer Amir", "игрок"} {
		assert.Equal(t, name, New(name).Name())
	}
}

func TestIncreaseScore(t *testing.T) {
	p := New("Ali")

	p.IncreaseScore(1)
	p.IncreaseScore(1)
	assert.Equal(t, 2, p.Score())

	p.IncreaseScore(10)
	assert.Equal(t, 12, p.Score())
}
