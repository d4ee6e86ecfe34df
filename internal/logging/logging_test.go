package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gi8lino/jirareport/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("text format hides debug by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := logging.SetupLogger(logging.LogFormatText, false, &buf)
		logger.Debug("hidden")
		logger.Info("shown", "key", "A-1")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "key=A-1")
	})

	t.Run("json format with debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := logging.SetupLogger(logging.LogFormatJSON, true, &buf)
		logger.Debug("request", "url", "https://acme.atlassian.net")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "request", entry["msg"])
		assert.Equal(t, "https://acme.atlassian.net", entry["url"])
	})
}
