package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/frodenas/driverfetch"
	"github.com/frodenas/driverfetch/in"
	"github.com/frodenas/driverfetch/probe"
)

func runIn(args []string) {
	fs := flag.NewFlagSet("in", flag.ExitOnError)
	var flags sourceFlags
	flags.register(fs)
	writeMetadata := fs.Bool("write-metadata", false, "write version, build and url files into the destination")
	fs.Parse(args)

	destinationDir := driverfetch.DefaultDestination
	if fs.NArg() > 0 {
		destinationDir = fs.Arg(0)
	}

	source, err := flags.source()
	if err != nil {
		driverfetch.Fatal("loading config", err)
	}

	request := in.InRequest{
		Source:  source,
		Version: driverfetch.Version{Browser: flags.browserVersion},
		Params:  in.Params{WriteMetadata: *writeMetadata},
	}

	releaseClient, err := driverfetch.NewReleaseClient(os.Stderr, source)
	if err != nil {
		driverfetch.Fatal("building release client", err)
	}

	command := in.NewInCommand(releaseClient, probe.New(source), os.Stdout)
	if _, err := command.Run(destinationDir, request); err != nil {
		if errors.Is(err, driverfetch.ErrDetection) {
			fmt.Println("Unable to find browser version.")
			return
		}
		driverfetch.Fatal("running command", err)
	}
}
