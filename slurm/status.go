package slurm

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// squeue state codes
const (
	StateRunning     = "R"
	StatePending     = "PD"
	StateConfiguring = "CF"
	StateCompleting  = "CG"
	StateCompleted   = "CD"
	StateFailed      = "F"
	StateTimeout     = "TO"
	StateNodeFail    = "NF"
)

// JobStatus is a single queue observation for a job.
type JobStatus struct {
	Node  string
	State string
}

// ParsedStatus tags one squeue response: Empty when the job is gone from
// the queue, Malformed when the line does not split into node and state,
// otherwise Status holds the observation.
type ParsedStatus struct {
	Empty     bool
	Malformed bool
	Raw       string
	Status    JobStatus
}

// QueryCommand returns the remote squeue invocation for jobID. The format
// string is single-quoted so the pipe survives the remote shell.
func QueryCommand(jobID string) string {
	return fmt.Sprintf("squeue -j %s -o '%%N|%%t' --noheader", jobID)
}

// ParseStatusLine parses squeue output of the form "<node>|<state>".
func ParseStatusLine(out string) ParsedStatus {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return ParsedStatus{Empty: true}
	}
	parts := strings.Split(trimmed, "|")
	if len(parts) < 2 {
		return ParsedStatus{Malformed: true, Raw: trimmed}
	}
	return ParsedStatus{
		Raw: trimmed,
		Status: JobStatus{
			Node:  strings.TrimSpace(parts[0]),
			State: strings.TrimSpace(parts[1]),
		},
	}
}

// Status runs a single queue query for jobID.
func Status(s Session, jobID string) (JobStatus, error) {
	if !safeArg.MatchString(jobID) {
		return JobStatus{}, errors.Errorf("slurm: unsafe job id %q", jobID)
	}
	out, err := s.RunCommand(QueryCommand(jobID))
	if err != nil {
		return JobStatus{}, errors.Wrapf(err, "slurm: query job %s", jobID)
	}
	parsed := ParseStatusLine(out)
	switch {
	case parsed.Empty:
		return JobStatus{}, errors.Wrapf(ErrJobNotFound, "job %s", jobID)
	case parsed.Malformed:
		return JobStatus{}, errors.Errorf("slurm: unexpected squeue output: %q", parsed.Raw)
	}
	return parsed.Status, nil
}
