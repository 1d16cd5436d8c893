package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollamastack/ollamastack/internal/config"
)

func TestWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "ollamastack.yaml")

	cfg := &config.Config{
		Region:            "us-east-1",
		StackName:         "my-ollama",
		InstanceType:      "g4dn.xlarge",
		HostedZoneID:      "Z0123456789ABCDEFGHIJ",
		HostedZoneName:    "example.com",
		BasicAuthUser:     "admin",
		BasicAuthPassword: "hunter2",
	}

	err := WriteConfig(cfg, outputPath)
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	assert.Contains(t, string(content), "# ollamastack deployment configuration")
	assert.Contains(t, string(content), "stack_name: my-ollama")
	assert.Contains(t, string(content), "basic_auth_username: admin")
	assert.NotContains(t, string(content), "hunter2", "password must never reach the file")

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteConfigRoundTrips(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "ollamastack.yaml")

	cfg := &config.Config{
		Region:         "eu-west-1",
		StackName:      "llm",
		InstanceType:   "g5.xlarge",
		HostedZoneID:   "Z0123456789ABCDEFGHIJ",
		HostedZoneName: "example.org.",
		Subdomain:      "chat",
		ImportKeyPair:  true,
		BasicAuthUser:  "admin",
	}

	require.NoError(t, WriteConfig(cfg, outputPath))

	loaded, err := config.LoadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.StackName, loaded.StackName)
	assert.Equal(t, cfg.Subdomain, loaded.Subdomain)
	assert.True(t, loaded.ImportKeyPair)
	assert.Empty(t, loaded.BasicAuthPassword)
}

func TestWriteConfigBadPath(t *testing.T) {
	cfg := &config.Config{StackName: "x"}
	err := WriteConfig(cfg, filepath.Join(t.TempDir(), "missing", "ollamastack.yaml"))
	require.Error(t, err)
}
