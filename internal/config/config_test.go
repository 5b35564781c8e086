package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fmizzell/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "todos", cfg.Dir)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultPathFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".config", "todo", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("dir: /var/lib/todo\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/todo", cfg.Dir)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: my-tasks\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my-tasks", cfg.Dir)
}

func TestLoad_EmptyDirFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: \"\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDir, cfg.Dir)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultDir, cfg.Dir)

	// The written file loads back to the defaults
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)

	// Never overwrites
	err = WriteDefault(path)
	assert.ErrorContains(t, err, "already exists")
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(&Config{Dir: "/tmp/tasks"})
	require.NoError(t, err)
	assert.Equal(t, "dir: /tmp/tasks\n", string(data))
}

func TestLoad_FilesystemFailuresAreIOErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	assert.ErrorIs(t, err, todo.ErrIO)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, todo.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// Bad YAML is a problem with the content, not the filesystem
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: [unclosed\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, todo.ErrIO)
}

func TestWriteDefault_UnderRegularFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := WriteDefault(filepath.Join(blocker, "config.yaml"))
	assert.ErrorIs(t, err, todo.ErrIO)
}
