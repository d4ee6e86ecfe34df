package flag_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/containeroo/tinyflags"
	"github.com/gi8lino/jirareport/internal/flag"
	"github.com/gi8lino/jirareport/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns a getEnv function backed by a map.
func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	t.Run("defaults from environment", func(t *testing.T) {
		t.Parallel()

		env := envMap(map[string]string{
			"USERNAME":    "me@example.com",
			"API_TOKEN":   "abc123",
			"DOMAIN":      "acme",
			"JQL_EXAMPLE": "project = ACME",
		})
		var out strings.Builder

		cfg, err := flag.ParseArgs("v1.2.3", []string{}, &out, env)
		require.NoError(t, err)
		assert.Equal(t, "me@example.com", cfg.Username)
		assert.Equal(t, "abc123", cfg.APIToken)
		assert.Equal(t, "", cfg.BearerToken)
		assert.Equal(t, "acme", cfg.Domain)
		assert.Equal(t, "project = ACME", cfg.JQL)
		assert.Equal(t, "", cfg.Config)
		assert.Equal(t, ".env", cfg.EnvFile)
		assert.Equal(t, "json", string(cfg.Output))
		assert.Equal(t, "text", string(cfg.LogFormat))
		assert.False(t, cfg.Debug)
	})

	t.Run("flags win over environment", func(t *testing.T) {
		t.Parallel()

		env := envMap(map[string]string{"USERNAME": "env-user", "DOMAIN": "env-site"})
		args := []string{
			"--username=flag-user",
			"--domain=flag-site",
			"--bearer-token=bear",
			"--jql=status = Open",
		}
		var out strings.Builder

		cfg, err := flag.ParseArgs("v1", args, &out, env)
		require.NoError(t, err)
		assert.Equal(t, "flag-user", cfg.Username)
		assert.Equal(t, "flag-site", cfg.Domain)
		assert.Equal(t, "bear", cfg.BearerToken)
		assert.Equal(t, "status = Open", cfg.JQL)
	})

	t.Run("env file fills gaps only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jira.env")
		testutils.MustWriteFile(t, path, "USERNAME=file-user\nAPI_TOKEN=file-token\nDOMAIN=file-site\n")

		env := envMap(map[string]string{"DOMAIN": "env-site"})
		var out strings.Builder

		cfg, err := flag.ParseArgs("v1", []string{"--env-file=" + path}, &out, env)
		require.NoError(t, err)
		assert.Equal(t, "file-user", cfg.Username)
		assert.Equal(t, "file-token", cfg.APIToken)
		assert.Equal(t, "env-site", cfg.Domain)
	})

	t.Run("explicit missing env file", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder

		_, err := flag.ParseArgs("v1", []string{"--env-file=/nope/missing.env"}, &out, envMap(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read env file")
	})

	t.Run("output and logging flags", func(t *testing.T) {
		t.Parallel()

		args := []string{"--output=template", "--log-format=json", "--debug", "--config=report.yaml"}
		var out strings.Builder

		cfg, err := flag.ParseArgs("v1", args, &out, envMap(nil))
		require.NoError(t, err)
		assert.Equal(t, "template", string(cfg.Output))
		assert.Equal(t, "json", string(cfg.LogFormat))
		assert.True(t, cfg.Debug)
		assert.Equal(t, "report.yaml", cfg.Config)
	})

	t.Run("invalid output format", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder

		_, err := flag.ParseArgs("v1", []string{"--output=xml"}, &out, envMap(nil))
		require.Error(t, err)
	})

	t.Run("help requested", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder

		_, err := flag.ParseArgs("v1", []string{"--help"}, &out, envMap(nil))
		require.Error(t, err)
		assert.True(t, tinyflags.IsHelpRequested(err))
	})

	t.Run("version requested", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder

		_, err := flag.ParseArgs("v9.9.9", []string{"--version"}, &out, envMap(nil))
		require.Error(t, err)
		assert.True(t, tinyflags.IsVersionRequested(err))
	})
}
