package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/project-manager/pkg/strings"
)

func TestParseTypedValue(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		v, err := strings.ParseTypedValue[int]("42")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("pointer to duration", func(t *testing.T) {
		t.Parallel()
		v, err := strings.ParseTypedValue[*time.Duration]("15s")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 15*time.Second, *v)
	})

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		v, err := strings.ParseTypedValue[uuid.UUID](id.String())
		require.NoError(t, err)
		assert.Equal(t, id, v)
	})

	t.Run("unix time", func(t *testing.T) {
		t.Parallel()
		v, err := strings.ParseTypedValue[time.Time]("1700000000")
		require.NoError(t, err)
		assert.Equal(t, int64(1700000000), v.Unix())
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Parallel()
		_, err := strings.ParseTypedValue[int]("forty two")
		assert.Error(t, err)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		_, err := strings.ParseTypedValue[[]byte]("x")
		assert.Error(t, err)
	})
}
