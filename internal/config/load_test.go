package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ollamastack.yaml")
	content := `region: ap-southeast-2
stack_name: ollama-test
instance_type: g4dn.xlarge
hosted_zone_id: Z0123456789ABCDEF
hosted_zone_name: example.com
basic_auth_username: admin
keypair_save_path: ./keys
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "ollama-test", cfg.StackName)
	assert.Equal(t, "./keys", cfg.KeyPairSavePath)
	assert.Empty(t, cfg.BasicAuthPassword, "password is never read from file")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "nope.yaml")
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0600))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestLoadTimeoutsDefaults(t *testing.T) {
	timeouts := LoadTimeouts()
	assert.Equal(t, 30*time.Minute, timeouts.StackWait)
	assert.Equal(t, 10*time.Second, timeouts.PollInterval)
	assert.Equal(t, 4, timeouts.RetryMaxAttempts)
	assert.Equal(t, time.Second, timeouts.RetryInitialDelay)
}

func TestLoadTimeoutsFromEnvironment(t *testing.T) {
	t.Setenv("OLLAMASTACK_TIMEOUT_STACK_WAIT", "45m")
	t.Setenv("OLLAMASTACK_POLL_INTERVAL", "5s")
	t.Setenv("OLLAMASTACK_RETRY_MAX_ATTEMPTS", "7")

	timeouts := LoadTimeouts()
	assert.Equal(t, 45*time.Minute, timeouts.StackWait)
	assert.Equal(t, 5*time.Second, timeouts.PollInterval)
	assert.Equal(t, 7, timeouts.RetryMaxAttempts)
}

func TestLoadTimeoutsBadValuesFallBack(t *testing.T) {
	t.Setenv("OLLAMASTACK_TIMEOUT_STACK_WAIT", "soon")
	t.Setenv("OLLAMASTACK_RETRY_MAX_ATTEMPTS", "many")

	timeouts := LoadTimeouts()
	assert.Equal(t, 30*time.Minute, timeouts.StackWait)
	assert.Equal(t, 4, timeouts.RetryMaxAttempts)
}
