package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

var parser = flags.NewNamedParser("snellius-gpu", flags.HelpFlag|flags.PassDoubleDash)

func printHelp(parser *flags.Parser) {
	// Print help for active command
	if parser.Command.Active != nil {
		parser.Command = parser.Command.Active
	}
	var b bytes.Buffer
	parser.WriteHelp(&b)
	fmt.Println(b.String())
}

func main() {
	var err error
	var args []string
	parser.SubcommandsOptional = true
	if args, err = parser.Parse(); err != nil {
		goto errHandler
	}
	// no subcommand: run the request workflow with the top-level options
	if parser.Command.Active == nil {
		if err = requestCommand.Execute(args); err != nil {
			goto errHandler
		}
	}
	os.Exit(0)
errHandler:
	switch flagsErr := err.(type) {
	case *flags.Error:
		if flagsErr.Type == flags.ErrHelp ||
			flagsErr.Type == flags.ErrCommandRequired ||
			flagsErr.Type == flags.ErrRequired {
			printHelp(parser)
			os.Exit(0)
		}
		fmt.Println(flagsErr.Error())
		os.Exit(1)
	default:
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
