package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `time: 02:30:00
partition: gpu_a100
gpus: "4"
user: alice
host: snellius02
ssh_config: /home/alice/.ssh/config
poll_interval: 10
max_wait: 3600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	config, err := ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "02:30:00", config.Time)
	assert.Equal(t, "gpu_a100", config.Partition)
	assert.Equal(t, "4", config.Gpus)
	assert.Equal(t, "alice", config.User)
	assert.Equal(t, "snellius02", config.Host)
	assert.Equal(t, "/home/alice/.ssh/config", config.SSHConfig)
	assert.Equal(t, 10, config.PollInterval)
	assert.Equal(t, 0, config.RetryInterval)
	assert.Equal(t, 3600, config.MaxWait)
}

func TestReadConfigFileMissing(t *testing.T) {
	t.Parallel()
	config, err := ReadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Config{}, config)
}

func TestReadConfigFileInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("time: [\n"), 0600))

	_, err := ReadConfigFile(path)
	require.Error(t, err)
}
