package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[templates]
movie = "{title} [{year}]"

[behavior]
skip_duplicates = true

[history]
path = "/var/lib/mediasort/history.db"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "{title} [{year}]", cfg.Templates.Movie)
	assert.Empty(t, cfg.Templates.Music)
	assert.True(t, cfg.Behavior.SkipDuplicates)
	assert.Equal(t, "/var/lib/mediasort/history.db", cfg.History.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DefaultsSurviveAbsentKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[behavior]
backup_before_rename = true
`))
	require.NoError(t, err)

	assert.True(t, cfg.Behavior.CreateFolders, "create_folders defaults to true")
	assert.True(t, cfg.Behavior.LogOperations, "log_operations defaults to true")
	assert.True(t, cfg.Behavior.BackupBeforeRename)
	assert.False(t, cfg.Behavior.SkipDuplicates)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./data/mediasort.db", cfg.History.Path)
}

func TestLoad_DisablingADefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[behavior]
create_folders = false
`))
	require.NoError(t, err)
	assert.False(t, cfg.Behavior.CreateFolders)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("MEDIASORT_TEST_DB", "/tmp/test.db")
	cfg, err := Load(writeConfig(t, `
[history]
path = "${MEDIASORT_TEST_DB}"
`))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.History.Path)
	assert.Empty(t, cfg.MissingEnv)
}

func TestLoad_MissingEnvReported(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[history]
path = "${MEDIASORT_NO_SUCH_VAR}"
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"MEDIASORT_NO_SUCH_VAR"}, cfg.MissingEnv)
	assert.Equal(t, "${MEDIASORT_NO_SUCH_VAR}", cfg.History.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[behavior\nbroken"))
	assert.Error(t, err)
}

func TestOrganizeOptions(t *testing.T) {
	cfg := Default()
	cfg.Templates.Video = "{title} - {episode}"
	cfg.Behavior.StrictTitleMatch = true

	opts := cfg.OrganizeOptions()
	assert.Equal(t, "{title} - {episode}", opts.Templates.Series)
	assert.True(t, opts.CreateFolders)
	assert.True(t, opts.StrictTitleMatch)
	assert.False(t, opts.SkipDuplicates)
}
