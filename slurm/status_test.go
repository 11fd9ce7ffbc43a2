package slurm

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCommand(t *testing.T) {
	t.Parallel()
	require.Equal(t, "squeue -j 4821937 -o '%N|%t' --noheader", QueryCommand("4821937"))
}

func TestParseStatusLine(t *testing.T) {
	t.Parallel()
	parsed := ParseStatusLine("gcn123|R\n")
	require.False(t, parsed.Empty)
	require.False(t, parsed.Malformed)
	assert.Equal(t, "gcn123", parsed.Status.Node)
	assert.Equal(t, "R", parsed.Status.State)
}

func TestParseStatusLineTrimsFields(t *testing.T) {
	t.Parallel()
	parsed := ParseStatusLine(" gcn123 | PD \n")
	require.False(t, parsed.Malformed)
	assert.Equal(t, "gcn123", parsed.Status.Node)
	assert.Equal(t, "PD", parsed.Status.State)
}

func TestParseStatusLineEmpty(t *testing.T) {
	t.Parallel()
	require.True(t, ParseStatusLine("").Empty)
	require.True(t, ParseStatusLine("   \n").Empty)
}

func TestParseStatusLineMalformed(t *testing.T) {
	t.Parallel()
	parsed := ParseStatusLine("gcn123\n")
	require.True(t, parsed.Malformed)
	assert.Equal(t, "gcn123", parsed.Raw)
}

func TestStatusReturnsObservation(t *testing.T) {
	t.Parallel()
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			return "gcn123|R\n", nil
		},
	}
	status, err := Status(s, "4821937")
	require.NoError(t, err)
	require.Equal(t, JobStatus{Node: "gcn123", State: "R"}, status)
}

func TestStatusJobGone(t *testing.T) {
	t.Parallel()
	s := &MockSession{
		MockRunCommand: func(cmd string) (string, error) {
			return "", nil
		},
	}
	_, err := Status(s, "4821937")
	require.Error(t, err)
	require.Equal(t, ErrJobNotFound, errors.Cause(err))
}
