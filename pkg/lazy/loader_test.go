package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/project-manager/pkg/lazy"
)

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("provider called once", func(t *testing.T) {
		t.Parallel()
		calls := 0
		l := lazy.New(func() (int, error) {
			calls++
			return 7, nil
		})

		assert.Equal(t, 7, l.MustLoad())
		assert.Equal(t, 7, l.MustLoad())
		assert.Equal(t, 1, calls)
	})

	t.Run("IfLoaded skipped before load", func(t *testing.T) {
		t.Parallel()
		l := lazy.New(func() (string, error) { return "value", nil })

		var got string
		l.IfLoaded(func(v string) { got = v })
		assert.Empty(t, got)

		_, err := l.Load()
		require.NoError(t, err)
		l.IfLoaded(func(v string) { got = v })
		assert.Equal(t, "value", got)
	})

	t.Run("error is kept", func(t *testing.T) {
		t.Parallel()
		errExpected := errors.New("boom")
		l := lazy.New(func() (int, error) { return 0, errExpected })

		_, err := l.Load()
		assert.ErrorIs(t, err, errExpected)
		assert.Panics(t, func() { l.MustLoad() })
	})
}
