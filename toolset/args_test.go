package toolset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArg(t *testing.T) {
	s, err := stringArg(map[string]any{"name": "x"}, "name")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = stringArg(map[string]any{}, "name")
	assert.ErrorContains(t, err, "name is required")

	_, err = stringArg(map[string]any{"name": 7.0}, "name")
	assert.ErrorContains(t, err, "must be a non-empty string")

	_, err = stringArg(map[string]any{"name": ""}, "name")
	assert.Error(t, err)
}

func TestOptStringPtr(t *testing.T) {
	assert.Nil(t, optStringPtr(map[string]any{}, "name"))
	assert.Nil(t, optStringPtr(map[string]any{"name": 1.0}, "name"))

	p := optStringPtr(map[string]any{"name": ""}, "name")
	require.NotNil(t, p, "present empty string must yield a pointer")
	assert.Equal(t, "", *p)
}

func TestFloatArg(t *testing.T) {
	f, err := floatArg(map[string]any{"position": 65535.0}, "position")
	require.NoError(t, err)
	assert.Equal(t, 65535.0, f)

	f, err = floatArg(map[string]any{"position": 3}, "position")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = floatArg(map[string]any{}, "position")
	require.NoError(t, err)
	assert.Zero(t, f)

	_, err = floatArg(map[string]any{"position": "high"}, "position")
	assert.ErrorContains(t, err, "must be a number")
}

func TestOptFloatPtr(t *testing.T) {
	p, err := optFloatPtr(map[string]any{}, "position")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = optFloatPtr(map[string]any{"position": 1.5}, "position")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1.5, *p)
}

func TestBoolArgs(t *testing.T) {
	assert.True(t, boolArg(map[string]any{"flag": true}, "flag"))
	assert.False(t, boolArg(map[string]any{}, "flag"))

	assert.Nil(t, optBoolPtr(map[string]any{}, "flag"))
	p := optBoolPtr(map[string]any{"flag": false}, "flag")
	require.NotNil(t, p)
	assert.False(t, *p)
}

func TestStringSliceArg(t *testing.T) {
	out, err := stringSliceArg(map[string]any{"ids": []any{"a", "b"}}, "ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)

	out, err = stringSliceArg(map[string]any{"ids": []string{"a"}}, "ids")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, out)

	out, err = stringSliceArg(map[string]any{}, "ids")
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = stringSliceArg(map[string]any{"ids": []any{"a", 2.0}}, "ids")
	assert.ErrorContains(t, err, "ids[1] must be a string")

	_, err = stringSliceArg(map[string]any{"ids": "a"}, "ids")
	assert.ErrorContains(t, err, "must be an array")
}

func TestTimeArg(t *testing.T) {
	at, err := timeArg(map[string]any{"dueDate": "2026-08-28T10:00:00Z"}, "dueDate")
	require.NoError(t, err)
	require.NotNil(t, at)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), at.UTC())

	at, err = timeArg(map[string]any{}, "dueDate")
	require.NoError(t, err)
	assert.Nil(t, at)

	_, err = timeArg(map[string]any{"dueDate": "tomorrow"}, "dueDate")
	assert.ErrorContains(t, err, "RFC3339")
}
