package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bizdesk.log")

	out, closeFn, err := Setup("warn", path)
	require.NoError(t, err)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetLevel(log.INFO)
	})

	log.Info("hidden")
	log.Warn("shown")
	_, err = out.Write([]byte("request line\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
	assert.Contains(t, string(data), "request line")
}

func TestSetup_UnknownLevel(t *testing.T) {
	_, _, err := Setup("loud", "")
	assert.Error(t, err)
}
