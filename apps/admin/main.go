package main

import (
	"fmt"
	"os"
)

func main() {
	cli := &commandLine{out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
