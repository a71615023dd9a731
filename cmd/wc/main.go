package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ryanwhitedev/wc/lib/wc"
)

func main() {
	options := wc.Options{}
	wcFS := wc.BindFlagSet(&options)
	if err := wcFS.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		wcFS.Usage()
		os.Exit(2)
	}
	if options.Help {
		wcFS.SetOutput(os.Stdout)
		wcFS.Usage()
		os.Exit(0)
	}
	options.Files = wcFS.Args()[:]
	if err := wc.Main(options); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
