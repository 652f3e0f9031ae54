package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	app, buf, _ := newTestApp(t, &fakeRuntime{})
	app.SetVersion("1.2.3", "abc123", "2024-01-01")

	err := app.execute("version")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "shipit version 1.2.3")
	assert.Contains(t, out, "commit: abc123")
	assert.Contains(t, out, "built: 2024-01-01")
}

func TestVersionCmd_Defaults(t *testing.T) {
	app, buf, _ := newTestApp(t, &fakeRuntime{})

	err := app.execute("version")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "shipit version dev")
}
