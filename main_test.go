package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/reusedev/pattern-hub/internal/examples"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yml")))
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunExampleCommand(t *testing.T) {
	out, err := run(t, "singleton", "conceptual")
	require.NoError(t, err)
	require.Equal(t, "Successful Singleton\n", out)
}

func TestMissingArguments(t *testing.T) {
	_, err := run(t, "observer")
	require.ErrorIs(t, err, examples.ErrMissingArguments)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "Strategy/real-world\n")
}
