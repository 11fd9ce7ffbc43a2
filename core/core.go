package core

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	ConfigPath     = "/.config/snellius-gpu/"
	ConfigFilename = "config.yaml"
)

const ConfigEnv = "SNELLIUS_GPU_CONFIG"

// JobRequest carries the operator-supplied reservation parameters.
// Fields are opaque strings handed to the scheduler, which is the source
// of truth for their format.
type JobRequest struct {
	Time      string
	Partition string
	Gpus      string
	User      string
	Host      string
}

// Config holds optional defaults read from the tool config file.
// Layout:
/*
time: 01:00:00
partition: gpu
gpus: "1"
user: spapa01
host: snellius01
ssh_config: /home/spapa01/.ssh/config
poll_interval: 5
retry_interval: 2
max_wait: 0
*/
type Config struct {
	Time      string `yaml:"time"`
	Partition string `yaml:"partition"`
	Gpus      string `yaml:"gpus"`
	User      string `yaml:"user"`
	Host      string `yaml:"host"`
	SSHConfig string `yaml:"ssh_config"`
	// polling policy, seconds; max_wait 0 waits forever
	PollInterval  int `yaml:"poll_interval"`
	RetryInterval int `yaml:"retry_interval"`
	MaxWait       int `yaml:"max_wait"`
}

// Build path for config file
// Set from environment or use well-known location
func getConfigPath() string {
	if env := os.Getenv(ConfigEnv); len(env) > 0 {
		return env
	}
	return os.Getenv("HOME") + ConfigPath + ConfigFilename
}

// ReadConfig loads the tool config file. A missing file is not an error;
// the zero Config falls through to the flag defaults.
func ReadConfig() (Config, error) {
	return ReadConfigFile(getConfigPath())
}

func ReadConfigFile(filename string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, errors.Wrap(err, "core: read config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "core: parse config")
	}
	return config, nil
}
