package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  convert -in FILE.csv [-out students.json] [-section-split 100] - generate a roster file from a spreadsheet CSV export")
	fmt.Fprintln(cli.out, "  inspect [-roster students.json] - summarize a roster file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	convertCmd := flag.NewFlagSet("convert", flag.ExitOnError)
	convertIn := convertCmd.String("in", "", "The spreadsheet CSV export to read.")
	convertOut := convertCmd.String("out", "students.json", "The roster file to write.")
	convertSplit := convertCmd.Int("section-split", 100, "Students up to this row go to section X, the rest to Y.")

	inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)
	inspectRoster := inspectCmd.String("roster", "students.json", "The roster file to summarize.")

	switch args[1] {
	case "convert":
		if err := convertCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *convertIn == "" {
			convertCmd.Usage()
			return errHelp
		}
		return cli.convert(*convertIn, *convertOut, *convertSplit)
	case "inspect":
		if err := inspectCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.inspect(*inspectRoster)
	default:
		cli.printUsage()
		return errHelp
	}
}
