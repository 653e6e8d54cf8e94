package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pierrec/cmdflag"

	"github.com/pierrec/lz4file/internal/cmds"
)

var version = "v0.1.0"

func main() {
	showVersion := flag.CommandLine.Bool(cmdflag.VersionBoolFlag, false, "print the program version")

	app := cmds.New(os.Stdout, os.Stderr)
	handler := app.Init(flag.CommandLine)
	flag.Parse()

	if *showVersion {
		fmt.Println("lz4file", version)
		return
	}
	if _, err := handler(flag.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
