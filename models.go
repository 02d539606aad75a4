package driverfetch

import (
	"net/url"
	"time"
)

const (
	DefaultMetadataURL = "https://googlechromelabs.github.io/chrome-for-testing/latest-patch-versions-per-build-with-downloads.json"
	DefaultArtifact    = "chromedriver"
	DefaultPlatform    = "win64"
	DefaultBrowserPath = `C:\Program Files\Google\Chrome\Application\chrome.exe`
	DefaultArchivePath = "chromedriver.zip"
	DefaultDestination = "chromedriver"
	DefaultTimeout     = 5 * time.Minute
)

type Source struct {
	MetadataURL     string   `json:"metadata_url" yaml:"metadata_url"`
	Artifact        string   `json:"artifact" yaml:"artifact"`
	Platform        string   `json:"platform" yaml:"platform"`
	BrowserPath     string   `json:"browser_path" yaml:"browser_path"`
	ProbeCommand    []string `json:"probe_command,omitempty" yaml:"probe_command"`
	ArchivePath     string   `json:"archive_path" yaml:"archive_path"`
	JSONKey         string   `json:"json_key,omitempty" yaml:"json_key"`
	StorageEndpoint string   `json:"storage_endpoint,omitempty" yaml:"storage_endpoint"`
	Timeout         string   `json:"timeout,omitempty" yaml:"timeout"`
}

func (source Source) IsValid() (bool, string) {
	if source.MetadataURL == "" {
		return false, "please specify the metadata_url"
	}

	if u, err := url.Parse(source.MetadataURL); err != nil || u.Host == "" {
		return false, "metadata_url must be an absolute URL"
	}

	if source.Artifact == "" {
		return false, "please specify the artifact"
	}

	if source.Platform == "" {
		return false, "please specify the platform"
	}

	if source.ArchivePath == "" {
		return false, "please specify the archive_path"
	}

	if source.BrowserPath == "" && len(source.ProbeCommand) == 0 {
		return false, "please specify either browser_path or probe_command"
	}

	if source.Timeout != "" {
		if _, err := source.TimeoutValue(); err != nil {
			return false, "if set, timeout must be a duration"
		}
	}

	return true, ""
}

func (source Source) TimeoutValue() (time.Duration, error) {
	if source.Timeout == "" {
		return DefaultTimeout, nil
	}

	return time.ParseDuration(source.Timeout)
}

type Version struct {
	Browser string `json:"browser,omitempty"`
	Build   string `json:"build,omitempty"`
}

type MetadataPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Metadata is the document served by the metadata endpoint.
type Metadata struct {
	Timestamp string                `json:"timestamp"`
	Builds    map[string]BuildEntry `json:"builds"`
}

type BuildEntry struct {
	Version   string                `json:"version"`
	Revision  string                `json:"revision"`
	Downloads map[string][]Download `json:"downloads"`
}

type Download struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
