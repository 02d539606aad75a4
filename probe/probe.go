// Package probe reads the version of the locally installed browser.
package probe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/frodenas/driverfetch"
)

const VersionPrefix = "Version="

type Probe interface {
	// Probe returns the installed version. found is false when the query
	// ran but reported no version.
	Probe() (version string, found bool, err error)
}

// CommandProbe runs Command and takes the value following Prefix on the
// first line of its standard output that starts with Prefix.
type CommandProbe struct {
	Command []string
	Prefix  string
}

func NewCommandProbe(command []string) *CommandProbe {
	return &CommandProbe{
		Command: command,
		Prefix:  VersionPrefix,
	}
}

// NewWMICProbe queries the file version of the executable at installPath
// through wmic.
func NewWMICProbe(installPath string) *CommandProbe {
	query := fmt.Sprintf(
		`wmic datafile where name="%s" get Version /value`,
		strings.ReplaceAll(installPath, `\`, `\\`),
	)
	return NewCommandProbe([]string{"cmd", "/c", query})
}

func New(source driverfetch.Source) Probe {
	if len(source.ProbeCommand) > 0 {
		return NewCommandProbe(source.ProbeCommand)
	}
	return NewWMICProbe(source.BrowserPath)
}

func (p *CommandProbe) Probe() (string, bool, error) {
	if len(p.Command) == 0 {
		return "", false, driverfetch.NewError(driverfetch.IOFailure, "querying browser version", errors.New("empty probe command"))
	}

	cmd := exec.Command(p.Command[0], p.Command[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", false, driverfetch.NewError(driverfetch.IOFailure, "querying browser version", err)
	}

	if err := cmd.Start(); err != nil {
		return "", false, driverfetch.NewError(driverfetch.IOFailure, "querying browser version", err)
	}

	version, found, scanErr := ParseVersion(stdout, p.Prefix)
	waitErr := cmd.Wait()

	if scanErr != nil {
		return "", false, driverfetch.NewError(driverfetch.IOFailure, "reading browser version", scanErr)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return "", false, driverfetch.NewError(driverfetch.IOFailure, "querying browser version", waitErr)
	}

	return version, found, nil
}

// ParseVersion scans r line by line for prefix. It always drains r so the
// writing process never blocks on a full pipe.
func ParseVersion(r io.Reader, prefix string) (string, bool, error) {
	var (
		version string
		found   bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if found {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, prefix) {
			version = strings.TrimSpace(strings.TrimPrefix(line, prefix))
			found = true
		}
	}

	if err := scanner.Err(); err != nil {
		return "", false, err
	}

	return version, found, nil
}

// Detect runs p and turns a missing version into a DetectionFailure.
func Detect(p Probe) (string, error) {
	version, found, err := p.Probe()
	if err != nil {
		return "", err
	}

	if !found {
		return "", driverfetch.NewError(driverfetch.DetectionFailure, "detecting browser version", errors.New("unable to find browser version"))
	}

	return version, nil
}
