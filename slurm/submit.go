package slurm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/spapa01/snellius-gpu/core"
)

// Values interpolated into a remote command line must stay plain words
// under the remote shell.
var safeArg = regexp.MustCompile(`^[A-Za-z0-9_.:,=@/-]+$`)

// SubmitCommand returns the remote sbatch invocation for req. The wrapped
// workload idles until the allocation is cancelled, keeping the node
// reserved.
func SubmitCommand(req core.JobRequest) string {
	return fmt.Sprintf("sbatch --parsable --partition=%s --time=%s --gpus=%s --wrap='sleep infinity'",
		req.Partition, req.Time, req.Gpus)
}

// Submit reserves resources for req and returns the scheduler job id.
// The submission is not retried: a failure or empty output aborts the run
// and any partial reservation is left to the operator.
func Submit(s Session, req core.JobRequest) (string, error) {
	for _, v := range []string{req.Partition, req.Time, req.Gpus} {
		if !safeArg.MatchString(v) {
			return "", errors.Errorf("slurm: unsafe argument %q", v)
		}
	}
	out, err := s.RunCommand(SubmitCommand(req))
	if err != nil {
		return "", errors.Wrap(err, "slurm: job submission failed")
	}
	jobID := strings.TrimSpace(out)
	if jobID == "" {
		return "", errors.New("slurm: submission returned no job id")
	}
	if !safeArg.MatchString(jobID) {
		return "", errors.Errorf("slurm: submission returned unexpected job id %q", jobID)
	}
	return jobID, nil
}

// Cancel releases the reservation held by jobID.
func Cancel(s Session, jobID string) error {
	if !safeArg.MatchString(jobID) {
		return errors.Errorf("slurm: unsafe job id %q", jobID)
	}
	if out, err := s.RunCommand("scancel " + jobID); err != nil {
		return errors.Wrapf(err, "slurm: cancel job %s: %q", jobID, strings.TrimSpace(out))
	}
	return nil
}
