package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	base := errors.New("db down")

	t.Run("finds code on wrapped chain", func(t *testing.T) {
		err := Wrap(Wrap(base, CodeNotFound, "inner"), CodeInternal, "outer")
		assert.True(t, HasCode(err, CodeInternal))
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeConflict))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(base, CodeInternal))
		assert.Equal(t, CodeInternal, GetCode(base))
	})

	t.Run("sees through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("load: %w", New(CodeNotFound, "submission not found"))
		assert.True(t, Is(err, CodeNotFound))
		assert.Equal(t, CodeNotFound, GetCode(err))
	})

	t.Run("wrap nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("unwrap exposes cause", func(t *testing.T) {
		err := Wrap(base, CodeInternal, "failed")
		assert.ErrorIs(t, err, base)
		assert.Contains(t, err.Error(), "db down")
	})
}
