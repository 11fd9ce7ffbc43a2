package main

import (
	"fmt"
	"time"

	"github.com/spapa01/snellius-gpu/core"
	"github.com/spapa01/snellius-gpu/logger"
	"github.com/spapa01/snellius-gpu/slurm"
	"github.com/spapa01/snellius-gpu/sshconfig"
)

type RequestCommand struct {
	Time      string `long:"time" description:"Job duration (HH:MM:SS)" default:"01:00:00"`
	Partition string `long:"partition" description:"Slurm partition" default:"gpu"`
	Gpus      string `long:"gpus" description:"Number of GPUs" default:"1"`
	User      string `long:"user" description:"Username on the cluster" default:"spapa01"`
	Host      string `long:"host" description:"Login node hostname" default:"snellius01"`

	sshConfigPath string
}

var requestCommand RequestCommand

// optionSet reports whether the operator passed the flag explicitly, as
// opposed to the struct holding its tag default.
func optionSet(name string) bool {
	if opt := parser.FindOptionByLongName(name); opt != nil {
		return opt.IsSet()
	}
	return false
}

// applyConfig lets config file values override the flag defaults; an
// explicitly set flag always wins.
func (x *RequestCommand) applyConfig(cfg core.Config) {
	if cfg.Time != "" && !optionSet("time") {
		x.Time = cfg.Time
	}
	if cfg.Partition != "" && !optionSet("partition") {
		x.Partition = cfg.Partition
	}
	if cfg.Gpus != "" && !optionSet("gpus") {
		x.Gpus = cfg.Gpus
	}
	if cfg.User != "" && !optionSet("user") {
		x.User = cfg.User
	}
	if cfg.Host != "" && !optionSet("host") {
		x.Host = cfg.Host
	}
	if cfg.SSHConfig != "" {
		x.sshConfigPath = cfg.SSHConfig
	}
}

func newPoller(s slurm.Session, cfg core.Config) *slurm.Poller {
	p := slurm.NewPoller(s)
	if cfg.PollInterval > 0 {
		p.Interval = time.Duration(cfg.PollInterval) * time.Second
	}
	if cfg.RetryInterval > 0 {
		p.RetryInterval = time.Duration(cfg.RetryInterval) * time.Second
	}
	if cfg.MaxWait > 0 {
		p.WaitTimeout = time.Duration(cfg.MaxWait) * time.Second
	}
	return p
}

// Execute runs the whole reservation workflow: submit the placeholder
// job, wait for it to run, point the ssh alias at the allocated node.
func (x *RequestCommand) Execute(args []string) error {
	cfg, err := core.ReadConfig()
	if err != nil {
		logger.WarningPrintf("ignoring tool config: %v", err)
	}
	x.applyConfig(cfg)

	req := core.JobRequest{
		Time:      x.Time,
		Partition: x.Partition,
		Gpus:      x.Gpus,
		User:      x.User,
		Host:      x.Host,
	}
	session := slurm.NewSession(req.Host)

	fmt.Printf("Submitting job: ssh %s %s\n", req.Host, slurm.SubmitCommand(req))
	jobID, err := slurm.Submit(session, req)
	if err != nil {
		return err
	}
	fmt.Printf("Job submitted. ID: %s\n", jobID)

	poller := newPoller(session, cfg)
	poller.Progress = func(state string) {
		fmt.Printf("Job state: %s. Waiting...\n", state)
	}
	fmt.Println("Waiting for job to start...")
	node, err := poller.WaitForNode(jobID)
	if err != nil {
		return err
	}
	fmt.Printf("Job is running on node: %s\n", node)

	path := x.sshConfigPath
	if path == "" {
		path = sshconfig.DefaultPath()
	}
	block := sshconfig.Block{
		HostName:  node,
		User:      req.User,
		ProxyJump: req.Host,
	}
	if err := sshconfig.Patch(path, block); err != nil {
		return err
	}
	fmt.Printf("Updated %s with HostName %s\n", path, node)
	fmt.Printf("Done! You can now access the GPU node via 'ssh %s'\n", sshconfig.Alias)
	return nil
}

func init() {
	parser.AddGroup("Request Options",
		"Reserve a GPU node and point the ssh alias at it",
		&requestCommand)
}
