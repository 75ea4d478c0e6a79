package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "warn", "json")

	log.Info().Msg("hidden")
	log.Warn().Str("course", "geo").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"course":"geo"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "debug", "pretty")
	log.Debug().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.False(t, strings.HasPrefix(out, "{"))
	assert.NotContains(t, out, "\x1b[", "pretty output must not carry color codes")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, "loud", "json")
	log.Debug().Msg("debug")
	log.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	f, err := OpenFile(path)
	require.NoError(t, err)

	log := Setup(f, "info", "json")
	log.Info().Msg("written")
	require.NoError(t, f.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "written")
}
