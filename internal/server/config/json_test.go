package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{old[0]}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseJson_NoFlagIsNoOp(t *testing.T) {
	withArgs(t, nil)

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddr, ":3000")
	assert.Equal(t, c.SecretKey, "")
}

func TestParseJson_OverlaysOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	content := `{"secret_key":"from-json","token_validity_minutes":15}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	withArgs(t, []string{"-c", path})

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.SecretKey, "from-json")
	assert.Equal(t, c.TokenValidityDuration, 15*time.Minute)

	// fields absent from the file keep their defaults
	assert.Equal(t, c.EndpointAddr, ":3000")
	assert.Equal(t, c.AllowedOrigins, []string{"http://localhost:5173", "http://localhost:3000"})
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	withArgs(t, []string{"-c", path})

	var c Config
	c.LoadDefaults()

	assert.Panics(t, func() { parseJson(&c) })
}
