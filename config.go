package driverfetch

import (
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

func DefaultSource() Source {
	return Source{
		MetadataURL: DefaultMetadataURL,
		Artifact:    DefaultArtifact,
		Platform:    DefaultPlatform,
		BrowserPath: DefaultBrowserPath,
		ArchivePath: DefaultArchivePath,
	}
}

// LoadSource reads a YAML source file over the defaults. Keys missing from
// the file keep their default value. An empty path returns the defaults.
func LoadSource(path string) (Source, error) {
	source := DefaultSource()
	if path == "" {
		return source, nil
	}

	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return Source{}, NewError(ConfigFailure, "reading config "+path, err)
	}

	if err := yaml.Unmarshal(contents, &source); err != nil {
		return Source{}, NewError(ConfigFailure, "parsing config "+path, err)
	}

	return source, nil
}
