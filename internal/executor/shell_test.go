package executor

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, command string, env map[string]string) (int, string, string) {
	t.Helper()
	color.NoColor = true

	var out, errOut bytes.Buffer
	shell := &Shell{OutW: &out, ErrW: &errOut}
	status, err := shell.Run(context.Background(), command, env)
	require.NoError(t, err)
	return status, out.String(), errOut.String()
}

func TestShellRun(t *testing.T) {
	status, out, errOut := runShell(t, "echo hello", nil)

	assert.Equal(t, 0, status)
	assert.Equal(t, "┆  hello\n", out)
	assert.Empty(t, errOut)
}

func TestShellStderrGutter(t *testing.T) {
	_, out, errOut := runShell(t, "echo oops 1>&2", nil)

	assert.Empty(t, out)
	assert.Equal(t, "┆  oops\n", errOut)
}

func TestShellExitStatus(t *testing.T) {
	status, _, _ := runShell(t, "exit 3", nil)
	assert.Equal(t, 3, status)
}

func TestShellEnvOverlay(t *testing.T) {
	_, out, _ := runShell(t, "echo $GREETING", map[string]string{"GREETING": "hi"})
	assert.Equal(t, "┆  hi\n", out)
}

func TestShellInheritsHostEnv(t *testing.T) {
	t.Setenv("YAKE_SHELL_TEST", "inherited")

	_, out, _ := runShell(t, "echo $YAKE_SHELL_TEST", map[string]string{"OTHER": "x"})
	assert.Equal(t, "┆  inherited\n", out)
}

func TestShellMultilineOutput(t *testing.T) {
	_, out, _ := runShell(t, `printf 'a\nb\n'`, nil)
	assert.Equal(t, "┆  a\n┆  b\n", out)
}

func TestOverlayEnvOrdering(t *testing.T) {
	merged := overlayEnv([]string{"HOST=1"}, map[string]string{"B": "2", "A": "1"})
	assert.Equal(t, []string{"HOST=1", "A=1", "B=2"}, merged)
}
