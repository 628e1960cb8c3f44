package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/magemock/pkg/config"
	"github.com/getmockd/magemock/pkg/logging"
)

func changedSet(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "magemock "+Version)
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig(&serveFlags{port: 9999}, changedSet())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Empty(t, cfg.Seed.Paths)
}

func TestResolveConfig_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "magemock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\nlog:\n  level: debug\n"), 0o644))

	f := &serveFlags{
		configPath: path,
		port:       7070,
		seed:       []string{"orders.yaml"},
		logLevel:   "error",
		logFormat:  "json",
	}

	cfg, err := resolveConfig(f, changedSet("port", "seed"))
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, []string{"orders.yaml"}, cfg.Seed.Paths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	cfg, err = resolveConfig(f, changedSet("log-level", "log-format"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestResolveConfig_Invalid(t *testing.T) {
	_, err := resolveConfig(&serveFlags{logFormat: "xml"}, changedSet("log-format"))
	assert.Error(t, err)

	_, err = resolveConfig(&serveFlags{configPath: filepath.Join(t.TempDir(), "missing.yaml")}, changedSet())
	assert.ErrorIs(t, err, config.ErrFileNotFound)
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"),
		[]byte(`{"orders": [{"entity_id": 1, "items": [{"item_id": 1, "qty_ordered": 1}]}]}`), 0o644))

	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Seed.Paths = []string{filepath.Join(dir, "*.json")}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cfg, logging.Nop()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runServe did not return after cancel")
	}
}

func TestRunServe_InvalidFixtures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"products": [{}]}`), 0o644))

	cfg := config.Default()
	cfg.Seed.Paths = []string{filepath.Join(dir, "*.json")}

	err := runServe(context.Background(), cfg, logging.Nop())
	require.ErrorIs(t, err, config.ErrInvalidFixtures)
}
