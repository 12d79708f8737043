package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdg/vmctl/internal/clog"
)

func TestLoadConfig_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "vmrun", cfg.VMRun.Path)
	assert.Equal(t, "nogui", cfg.Defaults.GUI)
	assert.Equal(t, filepath.Join(home, ".local", "state", "vmctl", "vmctl.log"), cfg.Log.File)

	_, err = os.Stat(DefaultPath())
	assert.ErrorIs(t, err, os.ErrNotExist, "loading must not create a config file")
}

func TestLoadConfig_LogFileFollowsXDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "state", "vmctl", "vmctl.log"), cfg.Log.File)
	assert.Equal(t, clog.DefaultLogPath(), cfg.Log.File)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "state", "vmctl", "vmctl.log"), cfg.Log.File)
}

func TestLoadConfig_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vmctl"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vmctl", "config.yaml"), []byte(`
vmrun:
  path: /opt/vmware/bin/vmrun
defaults:
  guest_user: builder
log:
  file: /var/tmp/vmctl.log
`), 0o600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/opt/vmware/bin/vmrun", cfg.VMRun.Path)
	assert.Equal(t, "builder", cfg.Defaults.GuestUser)
	assert.Equal(t, "nogui", cfg.Defaults.GUI)
	assert.Equal(t, "/bin/sh", cfg.Defaults.Interpreter)
	assert.Equal(t, "/var/tmp/vmctl.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vmrun:\n  host_type: player\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "player", cfg.VMRun.HostType)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("vmrun:\n  binary: vmrun\n"), 0o600))
	_, err := LoadConfig(unknown)
	assert.ErrorContains(t, err, "load config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("log:\n  level: loud\n"), 0o600))
	_, err = LoadConfig(invalid)
	assert.ErrorContains(t, err, "log.level")
}

func TestLoadConfig_Unreadable(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "read config")
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vmrun:
  path: ~/bin/vmrun
log:
  file: ~/vmctl.log
  audit_file: ~/vmctl-audit.log
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bin", "vmrun"), cfg.VMRun.Path)
	assert.Equal(t, filepath.Join(home, "vmctl.log"), cfg.Log.File)
	assert.Equal(t, filepath.Join(home, "vmctl-audit.log"), cfg.Log.AuditFile)
}
