package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/project-manager/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("PM_TEST_STRING", "secret")
	t.Setenv("PM_TEST_INT", "12")
	t.Setenv("PM_TEST_BROKEN_INT", "twelve")

	v, err := env.Parse[string]("PM_TEST_STRING")
	require.NoError(t, err)
	assert.Equal(t, "secret", v)

	i, err := env.Parse[int]("PM_TEST_INT")
	require.NoError(t, err)
	assert.Equal(t, 12, i)

	_, err = env.Parse[int]("PM_TEST_BROKEN_INT")
	assert.Error(t, err)

	_, err = env.Parse[string]("PM_TEST_MISSING")
	assert.ErrorIs(t, err, env.ErrNotFound)
}

func TestParseOptional(t *testing.T) {
	t.Setenv("PM_TEST_DURATION", "3s")

	d, err := env.ParseOptional[*time.Duration]("PM_TEST_DURATION")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 3*time.Second, *d)

	missing, err := env.ParseOptional[*time.Duration]("PM_TEST_MISSING_DURATION")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestParseList(t *testing.T) {
	t.Setenv("PM_TEST_LIST", "user, admin,,")

	list, err := env.ParseList[string]("PM_TEST_LIST", ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "admin"}, list)
}

func TestMustPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[string]("PM_TEST_MISSING_REQUIRED"))
	})
}
