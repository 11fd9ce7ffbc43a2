package slurm

import (
	"time"

	"github.com/pkg/errors"

	"github.com/spapa01/snellius-gpu/logger"
)

const (
	DefaultInterval      = 5 * time.Second
	DefaultRetryInterval = 2 * time.Second
)

// ErrJobNotFound reports a job missing from the queue; it finished or was
// rejected before the poll observed it.
var ErrJobNotFound = errors.New("job not found in queue")

// ErrWaitTimeout reports that WaitTimeout expired before the job started.
var ErrWaitTimeout = errors.New("timed out waiting for job to start")

// TerminalStateError reports a job that reached a terminal state without
// ever running.
type TerminalStateError struct {
	State string
}

func (e *TerminalStateError) Error() string {
	return "job reached terminal state " + e.State
}

// Poller blocks until a job is running and reports its allocated node.
//
// Transport failures, malformed responses and unknown state codes are
// transient: they are logged and the poll repeats. With WaitTimeout zero
// the wait is unbounded, matching the interactive single-user use case.
type Poller struct {
	Session       Session
	Interval      time.Duration // delay between queue polls
	RetryInterval time.Duration // shorter delay after a malformed response
	WaitTimeout   time.Duration // overall cap, 0 waits forever

	// Progress, when set, receives the state code of every non-running
	// observation.
	Progress func(state string)
}

// NewPoller returns a Poller with the default fixed-interval policy.
func NewPoller(s Session) *Poller {
	return &Poller{
		Session:       s,
		Interval:      DefaultInterval,
		RetryInterval: DefaultRetryInterval,
	}
}

// WaitForNode polls the queue until jobID is running and returns the node
// name. A job gone from the queue or in a terminal state fails the wait
// immediately.
func (p *Poller) WaitForNode(jobID string) (string, error) {
	if !safeArg.MatchString(jobID) {
		return "", errors.Errorf("slurm: unsafe job id %q", jobID)
	}
	var deadline time.Time
	if p.WaitTimeout > 0 {
		deadline = time.Now().Add(p.WaitTimeout)
	}
	for {
		delay := p.Interval
		out, err := p.Session.RunCommand(QueryCommand(jobID))
		if err != nil {
			logger.WarningPrintf("job %s: status query failed: %v", jobID, err)
		} else {
			parsed := ParseStatusLine(out)
			switch {
			case parsed.Empty:
				return "", errors.Wrapf(ErrJobNotFound, "job %s", jobID)
			case parsed.Malformed:
				logger.WarningPrintf("job %s: unexpected squeue output: %q", jobID, parsed.Raw)
				delay = p.RetryInterval
			default:
				status := parsed.Status
				switch status.State {
				case StateRunning:
					return status.Node, nil
				case StatePending, StateConfiguring, StateCompleting:
					logger.InfoPrintf("job %s: state %s, waiting", jobID, status.State)
				case StateCompleted, StateFailed, StateTimeout, StateNodeFail:
					return "", &TerminalStateError{State: status.State}
				default:
					logger.WarningPrintf("job %s: unexpected state %q", jobID, status.State)
				}
				if p.Progress != nil {
					p.Progress(status.State)
				}
			}
		}
		if !deadline.IsZero() && !time.Now().Add(delay).Before(deadline) {
			return "", ErrWaitTimeout
		}
		time.Sleep(delay)
	}
}
