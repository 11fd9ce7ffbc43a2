package slurm

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spapa01/snellius-gpu/core"
)

func gpuRequest() core.JobRequest {
	return core.JobRequest{
		Time:      "01:00:00",
		Partition: "gpu",
		Gpus:      "1",
		User:      "spapa01",
		Host:      "snellius01",
	}
}

func TestSubmitCommand(t *testing.T) {
	t.Parallel()
	cmd := SubmitCommand(gpuRequest())
	require.Equal(t,
		"sbatch --parsable --partition=gpu --time=01:00:00 --gpus=1 --wrap='sleep infinity'",
		cmd)
}

func TestSubmitReturnsTrimmedJobID(t *testing.T) {
	t.Parallel()
	var seen string
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			seen = cmd
			return "4821937\n", nil
		},
	}
	jobID, err := Submit(s, gpuRequest())
	require.NoError(t, err)
	require.Equal(t, "4821937", jobID)
	assert.Equal(t, SubmitCommand(gpuRequest()), seen)
}

func TestSubmitFailsOnTransportError(t *testing.T) {
	t.Parallel()
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			return "", pkgerrors.New("connection refused")
		},
	}
	_, err := Submit(s, gpuRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job submission failed")
}

func TestSubmitFailsOnEmptyOutput(t *testing.T) {
	t.Parallel()
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			return "  \n", nil
		},
	}
	_, err := Submit(s, gpuRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no job id")
}

func TestSubmitRejectsShellMetacharacters(t *testing.T) {
	t.Parallel()
	called := false
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			called = true
			return "1", nil
		},
	}
	req := gpuRequest()
	req.Partition = "gpu; rm -rf /"
	_, err := Submit(s, req)
	require.Error(t, err)
	require.False(t, called, "unsafe request must never reach the remote side")
}

func TestCancel(t *testing.T) {
	t.Parallel()
	var seen string
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			seen = cmd
			return "", nil
		},
	}
	require.NoError(t, Cancel(s, "4821937"))
	require.Equal(t, "scancel 4821937", seen)
}

func TestCancelRejectsUnsafeJobID(t *testing.T) {
	t.Parallel()
	s := &MockSession{}
	require.Error(t, Cancel(s, "123; reboot"))
}
