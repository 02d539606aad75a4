package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/frodenas/driverfetch"
	"github.com/frodenas/driverfetch/check"
	"github.com/frodenas/driverfetch/probe"
)

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var flags sourceFlags
	flags.register(fs)
	fs.Parse(args)

	source, err := flags.source()
	if err != nil {
		driverfetch.Fatal("loading config", err)
	}

	request := check.CheckRequest{
		Source:  source,
		Version: driverfetch.Version{Browser: flags.browserVersion},
	}

	releaseClient, err := driverfetch.NewReleaseClient(nil, source)
	if err != nil {
		driverfetch.Fatal("building release client", err)
	}

	command := check.NewCheckCommand(releaseClient, probe.New(source))
	response, err := command.Run(request)
	if err != nil {
		if errors.Is(err, driverfetch.ErrDetection) {
			fmt.Println("Unable to find browser version.")
			return
		}
		driverfetch.Fatal("running command", err)
	}

	outputResponse(response)
}

func outputResponse(response check.CheckResponse) {
	if err := json.NewEncoder(os.Stdout).Encode(response); err != nil {
		driverfetch.Fatal("writing response to stdout", err)
	}
}
