package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/pipelined/spiral/transform"
)

type listCommand struct {
	out io.Writer
}

//Implement command interface
func (cmd *listCommand) Name() string {
	return "list"
}

func (cmd *listCommand) Help() string {
	return "Show the list of available transforms"
}

func (cmd *listCommand) Register(fs *flag.FlagSet) {}

func (cmd *listCommand) Run() error {
	fmt.Fprintln(cmd.out, "Available transforms:")
	for _, t := range transform.All() {
		fmt.Fprintf(cmd.out, "\t%s\t%s\n", t.Name, t.Help)
	}
	return nil
}
