package versions

import (
	"fmt"
	"strings"

	"github.com/frodenas/driverfetch"
)

// LookupKeys derives the major.minor.patch and major.minor keys of a browser
// version such as "120.0.6099.109".
func LookupKeys(browserVersion string) (string, string, error) {
	parts := strings.Split(browserVersion, ".")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("invalid browser version %q: expected at least 3 components", browserVersion)
	}

	for _, part := range parts[:3] {
		if _, err := ParseKey(part); err != nil {
			return "", "", fmt.Errorf("invalid browser version %q: %s", browserVersion, err)
		}
	}

	majorMinorPatch := strings.Join(parts[:3], ".")
	majorMinor := strings.Join(parts[:2], ".")

	return majorMinorPatch, majorMinor, nil
}

// Resolve looks up the build for browserVersion: the floor of its
// major.minor.patch key first, then the floor of its major.minor key.
// Catalog keys are compared on the lookup key's components only, so the
// major.minor step picks the newest build of the same major.minor.
func Resolve(catalog *Catalog, browserVersion string) (Entry, error) {
	majorMinorPatch, majorMinor, err := LookupKeys(browserVersion)
	if err != nil {
		return Entry{}, driverfetch.NewError(driverfetch.ResolutionFailure, "resolving driver build", err)
	}

	for _, lookup := range []string{majorMinorPatch, majorMinor} {
		if entry, ok := catalog.FloorPrefix(MustParseKey(lookup)); ok {
			return entry, nil
		}
	}

	return Entry{}, driverfetch.NewError(
		driverfetch.ResolutionFailure,
		"resolving driver build",
		fmt.Errorf("no suitable version found for browser %s", browserVersion),
	)
}

func GetCatalog(client driverfetch.ReleaseClient, source driverfetch.Source) (*Catalog, error) {
	metadata, err := client.Metadata(source.MetadataURL)
	if err != nil {
		return nil, err
	}

	return NewCatalog(metadata, source.Artifact, source.Platform), nil
}
