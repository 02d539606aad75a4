package main

import (
	"flag"
	"strings"

	"github.com/frodenas/driverfetch"
)

type sourceFlags struct {
	config         string
	metadataURL    string
	artifact       string
	platform       string
	browserPath    string
	probeCommand   string
	archivePath    string
	jsonKey        string
	timeout        string
	browserVersion string
}

func (f *sourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "YAML file with source settings")
	fs.StringVar(&f.metadataURL, "metadata-url", "", "URL of the builds metadata document")
	fs.StringVar(&f.artifact, "artifact", "", "artifact to download (default \""+driverfetch.DefaultArtifact+"\")")
	fs.StringVar(&f.platform, "platform", "", "download platform (default \""+driverfetch.DefaultPlatform+"\")")
	fs.StringVar(&f.browserPath, "browser-path", "", "browser executable to query for its version")
	fs.StringVar(&f.probeCommand, "probe-command", "", "command printing a Version=<version> line, instead of the default query")
	fs.StringVar(&f.archivePath, "archive", "", "path of the downloaded archive (default \""+driverfetch.DefaultArchivePath+"\")")
	fs.StringVar(&f.jsonKey, "json-key", "", "service account JSON key for gs:// downloads")
	fs.StringVar(&f.timeout, "timeout", "", "HTTP timeout (default 5m)")
	fs.StringVar(&f.browserVersion, "browser-version", "", "use this browser version instead of detecting it")
}

// source loads the config file and applies the flags that were set over it.
func (f *sourceFlags) source() (driverfetch.Source, error) {
	source, err := driverfetch.LoadSource(f.config)
	if err != nil {
		return driverfetch.Source{}, err
	}

	override(&source.MetadataURL, f.metadataURL)
	override(&source.Artifact, f.artifact)
	override(&source.Platform, f.platform)
	override(&source.BrowserPath, f.browserPath)
	override(&source.ArchivePath, f.archivePath)
	override(&source.JSONKey, f.jsonKey)
	override(&source.Timeout, f.timeout)

	if f.probeCommand != "" {
		source.ProbeCommand = strings.Fields(f.probeCommand)
	}

	return source, nil
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}
