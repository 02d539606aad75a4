package in

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/frodenas/driverfetch"
	"github.com/frodenas/driverfetch/check"
	"github.com/frodenas/driverfetch/probe"
)

type InCommand struct {
	releaseClient driverfetch.ReleaseClient
	probe         probe.Probe
	progress      io.Writer
}

func NewInCommand(releaseClient driverfetch.ReleaseClient, browserProbe probe.Probe, progress io.Writer) *InCommand {
	if progress == nil {
		progress = ioutil.Discard
	}

	return &InCommand{
		releaseClient: releaseClient,
		probe:         browserProbe,
		progress:      progress,
	}
}

func (command *InCommand) Run(destinationDir string, request InRequest) (InResponse, error) {
	checkResponse, err := check.NewCheckCommand(command.releaseClient, command.probe).Run(check.CheckRequest{
		Source:  request.Source,
		Version: request.Version,
	})
	if err != nil {
		return InResponse{}, err
	}

	fmt.Fprintf(command.progress, "Browser version: %s\n", checkResponse.Version.Browser)
	fmt.Fprintf(command.progress, "Driver build: %s\n", checkResponse.Version.Build)
	fmt.Fprintf(command.progress, "Driver URL: %s\n", checkResponse.URL)

	archivePath := request.Source.ArchivePath
	if err := command.releaseClient.DownloadFile(checkResponse.URL, archivePath); err != nil {
		return InResponse{}, err
	}

	if err := command.createDirectory(destinationDir); err != nil {
		return InResponse{}, driverfetch.NewError(driverfetch.IOFailure, "creating "+destinationDir, err)
	}

	if err := command.unpackFile(archivePath, destinationDir); err != nil {
		return InResponse{}, err
	}

	if err := os.Remove(archivePath); err != nil {
		return InResponse{}, driverfetch.NewError(driverfetch.IOFailure, "removing "+archivePath, err)
	}

	if request.Params.WriteMetadata {
		if err := command.writeMetadataFiles(checkResponse, destinationDir); err != nil {
			return InResponse{}, driverfetch.NewError(driverfetch.IOFailure, "writing metadata files", err)
		}
	}

	fmt.Fprintf(command.progress, "%s downloaded and unpacked into %s\n", request.Source.Artifact, destinationDir)

	return InResponse{
		Version:  checkResponse.Version,
		Metadata: command.metadata(archivePath, checkResponse),
	}, nil
}

func (command *InCommand) createDirectory(destinationDir string) error {
	return os.MkdirAll(destinationDir, 0755)
}

func (command *InCommand) unpackFile(sourcePath string, destinationDir string) error {
	var (
		errorMessage = "extracting '%s'"
		fileName     = filepath.Base(sourcePath)
	)

	mimeType, err := getMimeType(sourcePath)
	if err != nil {
		return driverfetch.NewError(driverfetch.IOFailure, fmt.Sprintf(errorMessage, fileName), err)
	}

	if !isSupportedMimeType(mimeType) {
		return driverfetch.NewError(driverfetch.IOFailure, fmt.Sprintf(errorMessage, fileName), fmt.Errorf("unsupported MIME type %q", mimeType))
	}

	if err := unpack(mimeType, sourcePath, destinationDir); err != nil {
		return driverfetch.NewError(driverfetch.IOFailure, fmt.Sprintf(errorMessage, fileName), err)
	}

	return nil
}

func (command *InCommand) writeMetadataFiles(response check.CheckResponse, destinationDir string) error {
	files := map[string]string{
		"version": response.Version.Browser,
		"build":   response.Version.Build,
		"url":     response.URL,
	}

	for name, contents := range files {
		if err := ioutil.WriteFile(filepath.Join(destinationDir, name), []byte(contents), 0644); err != nil {
			return err
		}
	}

	return nil
}

func (command *InCommand) metadata(archivePath string, response check.CheckResponse) []driverfetch.MetadataPair {
	metadata := []driverfetch.MetadataPair{
		{
			Name:  "filename",
			Value: filepath.Base(archivePath),
		},
	}

	return append(metadata, response.Metadata...)
}
