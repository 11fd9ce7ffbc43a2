package slurm

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Session runs commands on the cluster login node.
type Session interface {
	RunCommand(cmd string) (string, error)
}

// sshSession reaches the login node through the local ssh client so the
// user's own keys, agent and client configuration apply. The target and
// the remote command travel as separate argv entries; no local shell is
// involved.
type sshSession struct {
	host string
}

// NewSession returns a Session backed by the local ssh client.
func NewSession(host string) Session {
	return &sshSession{host: host}
}

func (s *sshSession) RunCommand(cmd string) (string, error) {
	out, err := exec.Command("ssh", s.host, cmd).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return string(out), errors.Wrapf(err, "ssh %s: %s",
				s.host, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return string(out), errors.Wrapf(err, "ssh %s", s.host)
	}
	return string(out), nil
}
