package wc

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ryanwhitedev/wc/lib"
)

// BindFlagSet binds the variables in wo to the wc flags
func BindFlagSet(wo *Options) *pflag.FlagSet {
	var wcFS *pflag.FlagSet = pflag.NewFlagSet("wc", pflag.ContinueOnError)
	wcFS.BoolVarP(&wo.Lines, LineFlag, "l", false, "print the newline counts")
	wcFS.BoolVarP(&wo.Words, WordFlag, "w", false, "print the word counts")
	wcFS.BoolVarP(&wo.Characters, CharFlag, "m", false, "print the character counts")
	wcFS.BoolVarP(&wo.Bytes, ByteFlag, "c", false, "print the byte counts")
	wcFS.BoolVar(&wo.Help, "help", false, "display this help and exit")
	setUsage(wcFS)
	return wcFS
}

func setUsage(wcFS *pflag.FlagSet) {
	wcFS.Usage = func() {
		fmt.Fprint(wcFS.Output(), `Usage: wc [OPTION]... [FILE]...
Print newline, word, character, and byte counts for each FILE, and a total
line if more than one FILE is given.  A word is a non-zero-length sequence
of non-whitespace characters delimited by whitespace.

With no FILE, or when FILE is -, read standard input.

The options below may be used to select which counts are printed, always in
the following order: newline, word, character, byte.  With no options, all
four counts are printed.
`)
		wcFS.PrintDefaults()
	}
}

// Main is the kickoff for the wc program, after flags are parsed. Inputs
// are scanned one at a time in argument order; the first open or read
// failure aborts the run with no counts printed.
func Main(options Options) error {
	if len(options.Files) == 0 {
		options.Files = []string{"-"}
	}

	resultsSet := ResultsSet{}
	for _, filename := range options.Files {
		name, in, err := lib.OpenInput(filename)
		if err != nil {
			return err
		}
		results, err := Count(in)
		if filename != "-" {
			in.Close()
		}
		if err != nil {
			return err
		}
		results.Filename = name
		resultsSet.Add(results)
	}
	if len(resultsSet.Results) > 1 {
		resultsSet.Add(resultsSet.Total())
	}

	fmt.Print(resultsSet.Printf(options))
	return nil
}
