package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gridsim/internal/cli"
)

func TestRun_Interactive(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("PLACE 1,1,EAST\nRIGHT\nMOVE\nREPORT\nQUIT\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(in, out, errOut, []string{"-entity", "robot", "-no-color"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Welcome to the Robot simulation!")
	require.Contains(t, out.String(), "> 1,0,SOUTH\n")
	require.Contains(t, out.String(), "Simulation ended. Goodbye!")
}

func TestRun_Script(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "commands.txt")
	script := "PLACE 1,1,EAST\r\nRIGHT\nMOVE\nMOVE\nRIGHT\nMOVE\nMOVE\nREPORT\nJUNK\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0600))

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-script", path})
	require.NoError(t, err)
	require.Equal(t, "0,0,WEST\n", out.String())
}

func TestRun_ScriptWithoutReports(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(path, []byte("PLACE 9,9,EAST\nREPORT\n"), 0600))

	out := &bytes.Buffer{}
	require.NoError(t, run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-script", path}))
	require.Empty(t, out.String())
}

func TestRun_MissingScript(t *testing.T) {
	t.Parallel()

	err := run(nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"-script", filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "open script")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(nil, out, &bytes.Buffer{}, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_DebugLogsGoToErrOut(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	in := strings.NewReader("PLACE 7,7,NORTH\nQUIT\n")
	err := run(in, &bytes.Buffer{}, errOut, []string{"-log-level", "debug", "-log-format", "json", "-no-color"})
	require.NoError(t, err)
	require.Contains(t, errOut.String(), `"msg":"placement rejected"`)
	require.Contains(t, errOut.String(), `"msg":"simulation started"`)
}

func TestRun_ScriptWithLongLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "commands.txt")
	script := "PLACE 1,1,EAST\n" + strings.Repeat("x", 70000) + "\nMOVE\nREPORT\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0600))

	out := &bytes.Buffer{}
	require.NoError(t, run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-script", path}))
	require.Equal(t, "2,1,EAST\n", out.String())
}
