package testutils_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gi8lino/jirareport/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMustWriteFile ensures that MustWriteFile creates files and parent directories correctly.
func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates file with content", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "subdir", "testfile.txt")
		expected := "hello, world"

		testutils.MustWriteFile(t, filePath, expected)

		data, err := os.ReadFile(filePath)
		assert.NoError(t, err)
		assert.Equal(t, expected, string(data))
	})
}

func TestFakeJira(t *testing.T) {
	t.Parallel()

	t.Run("answers with fixed status and records requests", func(t *testing.T) {
		t.Parallel()

		srv := testutils.NewFakeJira(t, http.StatusTeapot, `{"ok":false}`)

		resp, err := http.Get(srv.URL + "/rest/api/2/field?x=1")
		require.NoError(t, err)
		defer resp.Body.Close() // nolint:errcheck

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		assert.JSONEq(t, `{"ok":false}`, string(body))

		reqs := srv.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, "/rest/api/2/field", reqs[0].URL.Path)
		assert.Equal(t, "1", reqs[0].URL.Query().Get("x"))
	})
}
