package tsc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The compiler exits non-zero whenever diagnostics exist; that must
// not surface as an error, and stderr must come back intact.
func TestCommandRunnerToleratesDiagnosticExit(t *testing.T) {
	runner := NewCommandRunner(Options{
		Command: "sh",
		Args:    []string{"-c", `echo "foo.ts(1,1): error TS6133: 'A' is declared but its value is never read." 1>&2; exit 2`},
	})

	output, err := runner.Diagnostics(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, output, "error TS6133")
}

func TestCommandRunnerCapturesStderrOnly(t *testing.T) {
	runner := NewCommandRunner(Options{
		Command: "sh",
		Args:    []string{"-c", `echo "stdout noise"; echo "stderr text" 1>&2`},
	})

	output, err := runner.Diagnostics(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "stderr text\n", output)
}

func TestCommandRunnerCleanExit(t *testing.T) {
	runner := NewCommandRunner(Options{Command: "true"})

	output, err := runner.Diagnostics(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, output)
}

// A compiler that cannot be launched at all is fatal.
func TestCommandRunnerMissingBinary(t *testing.T) {
	runner := NewCommandRunner(Options{Command: "definitely-not-a-real-binary-kqzx"})

	_, err := runner.Diagnostics(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestCommandRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewCommandRunner(Options{Command: "sh", Args: []string{"-c", "sleep 5"}})

	_, err := runner.Diagnostics(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "npx", opts.Command)
	assert.Equal(t, []string{"tsc"}, opts.Args)
	assert.Empty(t, opts.Project)
}

// An empty Options value falls back to the npx defaults.
func TestNewCommandRunnerDefaults(t *testing.T) {
	runner := NewCommandRunner(Options{})
	assert.Equal(t, "npx", runner.opts.Command)
}
