package main

import (
	"fmt"

	"github.com/spapa01/snellius-gpu/slurm"
)

type CancelCommand struct {
	Args struct {
		JobID string `positional-arg-name:"jobid" description:"job id"`
	} `positional-args:"true" required:"1"`
}

var cancelCommand CancelCommand

func (x *CancelCommand) Execute(args []string) error {
	if err := slurm.Cancel(loginSession(), x.Args.JobID); err != nil {
		return err
	}
	fmt.Printf("Canceled job: %s\n", x.Args.JobID)
	return nil
}

func init() {
	parser.AddCommand("cancel",
		"Release a reservation",
		"Cancel the placeholder job holding a GPU node",
		&cancelCommand)
}
