package check

import (
	"errors"

	"github.com/frodenas/driverfetch"
	"github.com/frodenas/driverfetch/probe"
	"github.com/frodenas/driverfetch/versions"
)

type CheckCommand struct {
	releaseClient driverfetch.ReleaseClient
	probe         probe.Probe
}

func NewCheckCommand(releaseClient driverfetch.ReleaseClient, browserProbe probe.Probe) *CheckCommand {
	return &CheckCommand{
		releaseClient: releaseClient,
		probe:         browserProbe,
	}
}

func (command *CheckCommand) Run(request CheckRequest) (CheckResponse, error) {
	if ok, message := request.Source.IsValid(); !ok {
		return CheckResponse{}, driverfetch.NewError(driverfetch.ConfigFailure, "validating source", errors.New(message))
	}

	browserVersion, err := command.browserVersion(request)
	if err != nil {
		return CheckResponse{}, err
	}

	catalog, err := versions.GetCatalog(command.releaseClient, request.Source)
	if err != nil {
		return CheckResponse{}, err
	}

	entry, err := versions.Resolve(catalog, browserVersion)
	if err != nil {
		return CheckResponse{}, err
	}

	return CheckResponse{
		Version: driverfetch.Version{
			Browser: browserVersion,
			Build:   entry.Key.String(),
		},
		URL:      entry.URL,
		Metadata: command.metadata(request.Source, entry),
	}, nil
}

func (command *CheckCommand) browserVersion(request CheckRequest) (string, error) {
	if request.Version.Browser != "" {
		return request.Version.Browser, nil
	}

	return probe.Detect(command.probe)
}

func (command *CheckCommand) metadata(source driverfetch.Source, entry versions.Entry) []driverfetch.MetadataPair {
	return []driverfetch.MetadataPair{
		{
			Name:  "artifact",
			Value: source.Artifact,
		},
		{
			Name:  "platform",
			Value: source.Platform,
		},
		{
			Name:  "url",
			Value: entry.URL,
		},
	}
}
