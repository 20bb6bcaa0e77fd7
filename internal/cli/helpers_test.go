package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/NikitaCOEUR/proxylists/internal/config"
	"github.com/NikitaCOEUR/proxylists/internal/logger"
	"github.com/NikitaCOEUR/proxylists/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv isolates HOME, XDG_CONFIG_HOME and PROXYLISTS_* for one test
type testEnv struct {
	home      string
	configDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tmpDir := t.TempDir()

	env := &testEnv{
		home:      filepath.Join(tmpDir, "home"),
		configDir: filepath.Join(tmpDir, "xdg"),
	}
	t.Setenv("HOME", env.home)
	t.Setenv("XDG_CONFIG_HOME", env.configDir)
	for _, key := range []string{"PROXYLISTS_ROOT", "PROXYLISTS_CONFIG", "PROXYLISTS_QUIET", "PROXYLISTS_LOG_LEVEL"} {
		unsetEnv(t, key)
	}
	return env
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Setenv(key, old) })
}

// root is the default storage directory under the isolated HOME
func (e *testEnv) root() string {
	return filepath.Join(e.home, store.DirName)
}

func (e *testEnv) pendingPath(name string) string {
	return filepath.Join(e.root(), name+"-pending.txt")
}

func (e *testEnv) allowedPath(name string) string {
	return filepath.Join(e.root(), name+"-allowed.txt")
}

// writeConfig writes the default settings file
func (e *testEnv) writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(e.configDir, config.AppName, config.DefaultFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), append([]string{"proxylists"}, args...), &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// newTestComponents builds components directly, bypassing flag parsing
func newTestComponents(t *testing.T, settings *config.Settings) (*components, *bytes.Buffer) {
	t.Helper()
	if settings == nil {
		settings = config.Defaults()
	}
	out := &bytes.Buffer{}
	log := logger.Discard()
	return &components{
		settings: settings,
		store:    store.New(filepath.Join(t.TempDir(), store.DirName), log),
		log:      log,
		out:      out,
	}, out
}

func TestResolveRoot(t *testing.T) {
	newTestEnv(t)
	t.Setenv("HOME", "/home/tester")

	settings := config.Defaults()

	root, err := resolveRoot("", settings)
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/proxylists", root)

	root, err = resolveRoot("{{ .HOME }}/flagged", settings)
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/flagged", root)

	settings.StorageRoot = "/srv/lists"
	root, err = resolveRoot("", settings)
	require.NoError(t, err)
	assert.Equal(t, "/srv/lists", root)

	root, err = resolveRoot("/override", settings)
	require.NoError(t, err)
	assert.Equal(t, "/override", root)
}

func TestResolveRoot_HomeUnset(t *testing.T) {
	newTestEnv(t)
	t.Setenv("HOME", "")

	_, err := resolveRoot("", config.Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOME")
}

func TestConfirm(t *testing.T) {
	c, out := newTestComponents(t, nil)

	c.confirm("Added pending: %s\n", "x")
	assert.Equal(t, "Added pending: x\n", out.String())

	out.Reset()
	c.settings.Confirmations = false
	c.confirm("Added pending: %s\n", "x")
	assert.Empty(t, out.String())
}
