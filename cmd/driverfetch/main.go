package main

import (
	"fmt"
	"os"
)

func main() {
	args := os.Args[1:]

	command := "in"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "in":
		runIn(args)
	case "check":
		runCheck(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`driverfetch - download the driver matching the installed browser

Usage:
  driverfetch [in] [options] [<dest directory>]
  driverfetch check [options]

Commands:
  in     Detect the browser, resolve, download and unpack the driver (default)
  check  Detect the browser and print the resolved driver build as JSON

Use "driverfetch <command> -h" for the options of a command.`)
}
