package main

import (
	"fmt"

	"github.com/spapa01/snellius-gpu/core"
	"github.com/spapa01/snellius-gpu/logger"
	"github.com/spapa01/snellius-gpu/slurm"
)

type StatusCommand struct {
	Args struct {
		JobID string `positional-arg-name:"jobid" description:"job id"`
	} `positional-args:"true" required:"1"`
}

var statusCommand StatusCommand

// loginSession resolves the login node like the request workflow does
// (the top-level --host flag, then the config file, then the default) and
// opens a session to it.
func loginSession() slurm.Session {
	cfg, err := core.ReadConfig()
	if err != nil {
		logger.WarningPrintf("ignoring tool config: %v", err)
	}
	requestCommand.applyConfig(cfg)
	return slurm.NewSession(requestCommand.Host)
}

func (x *StatusCommand) Execute(args []string) error {
	status, err := slurm.Status(loginSession(), x.Args.JobID)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", status.Node, status.State)
	return nil
}

func init() {
	parser.AddCommand("status",
		"Query a reservation",
		"Print the allocated node and scheduler state of a job",
		&statusCommand)
}
