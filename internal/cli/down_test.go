package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownCmd_All(t *testing.T) {
	fake := &fakeRuntime{}
	app, buf, dir := newTestApp(t, fake)

	err := app.execute("down", "-C", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"stop svc-dev", "rm svc-dev",
		"stop svc-prod", "rm svc-prod",
	}, fake.calls)
	assert.Contains(t, buf.String(), "==> removing previous container svc-dev")
	assert.Contains(t, buf.String(), "==> removing previous container svc-prod")
}

func TestDownCmd_SingleEnvironment(t *testing.T) {
	fake := &fakeRuntime{}
	app, _, dir := newTestApp(t, fake)

	err := app.execute("down", "prod", "-C", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"stop svc-prod", "rm svc-prod"}, fake.calls)
}

func TestDownCmd_UnknownTarget(t *testing.T) {
	fake := &fakeRuntime{}
	app, _, dir := newTestApp(t, fake)

	err := app.execute("down", "staging", "-C", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
	assert.Empty(t, fake.calls)
}
