package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazewalk/internal/generate"
	"github.com/samdwyer/mazewalk/internal/logging"
	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/theme"
)

// run executes the CLI and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

const classicSolved = "  *  *  *  *  *\n" +
	"  *  o  *  o  *\n" +
	"  *  x  x  x  *\n" +
	"  *  x  *  x  x\n" +
	"  *  x  *  *  *\n"

func TestSolveSample(t *testing.T) {
	stdout, stderr, err := run(t, "solve", "sample:classic")
	require.NoError(t, err)

	assert.Equal(t, msgFound+"\n"+classicSolved, stdout)
	assert.Contains(t, stderr, "search finished")
	assert.Contains(t, stderr, "found=true")
	assert.Contains(t, stderr, "path_len=7")
}

func TestSolveWithReset(t *testing.T) {
	stdout, _, err := run(t, "solve", "--reset", "sample:classic")
	require.NoError(t, err)

	clean := strings.NewReplacer("x", " ", "o", " ").Replace(classicSolved)
	assert.Equal(t, msgFound+"\n"+classicSolved+msgReset+"\n"+clean, stdout)
}

func TestSolveNotFound(t *testing.T) {
	stdout, _, err := run(t, "solve", "sample:blocked")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, msgNotFound+"\n"), stdout)
	assert.NotContains(t, stdout, "x")
}

func TestSolveJSON(t *testing.T) {
	stdout, _, err := run(t, "solve", "--json", "sample:open")
	require.NoError(t, err)

	var doc solveOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.True(t, doc.Found)
	assert.Equal(t, "sample:open", doc.Maze)
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, []maze.Position{maze.Pos(0, 0), maze.Pos(1, 0), maze.Pos(1, 1)}, doc.Route)
	assert.Empty(t, doc.Tried)
	assert.Equal(t, []string{"  x   ", "  x  x"}, doc.Grid)
}

func TestSolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.maze")
	require.NoError(t, os.WriteFile(path, []byte("1 3\n0 0\n0 2\n"), 0o644))

	stdout, _, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, msgFound+"\n  x  x  x\n", stdout)
}

func TestSolveErrors(t *testing.T) {
	_, _, err := run(t, "solve", "sample:nope")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve", filepath.Join(t.TempDir(), "missing.maze"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve")
	assert.Error(t, err)
}

func TestGenerateThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.maze")

	_, stderr, err := run(t, "generate", "--rows", "15", "--cols", "25", "--seed", "42", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "seed=42")

	stdout, _, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, msgFound+"\n"), stdout)

	// Same seed, same maze.
	again, _, err := run(t, "generate", "--rows", "15", "--cols", "25", "--seed", "42")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(content), again)
}

func TestGenerateTooSmall(t *testing.T) {
	_, _, err := run(t, "generate", "--rows", "3", "--cols", "3")
	assert.ErrorIs(t, err, generate.ErrTooSmall)
}

func TestSamples(t *testing.T) {
	stdout, _, err := run(t, "samples")
	require.NoError(t, err)
	assert.Equal(t, "sample:blocked\nsample:classic\nsample:open\nsample:rooms\n", stdout)

	stdout, _, err = run(t, "samples", "open")
	require.NoError(t, err)
	assert.Equal(t, "2 2\n0 0\n1 1\n", stdout)
}

func TestThemesUsesConfigAndFlags(t *testing.T) {
	stdout, _, err := run(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* classic")

	cfg := filepath.Join(t.TempDir(), "mazewalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("theme: ocean\nlog:\n  level: debug\n"), 0o644))

	stdout, stderr, err := run(t, "--config", cfg, "themes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* ocean")
	assert.Contains(t, stderr, "configuration loaded")

	stdout, _, err = run(t, "--config", cfg, "--theme", "mono", "themes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* mono")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MAZEWALK_LOG_FORMAT", "json")

	_, stderr, err := run(t, "solve", "sample:open")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry))
	assert.Equal(t, "search finished", entry["msg"])
	assert.Equal(t, true, entry["found"])
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestUnknownThemeForViewer(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	cfg.Set(cfgKeyTheme, "missing")

	a := &app{cfg: cfg}
	_, err = a.palette()
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mazewalk 0.1.0\n", stdout)
}

func TestTelemetryFlushedOnce(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"success", []string{"solve", "sample:open"}, false},
		{"failed command", []string{"solve", "sample:nope"}, true},
		{"bad arguments", []string{"solve"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			a := &app{log: logging.Discard()}
			a.shutdown = func(context.Context) error {
				calls++
				return nil
			}

			var stdout, stderr bytes.Buffer
			err := a.execute(context.Background(), tt.args, &stdout, &stderr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, calls)
		})
	}
}
