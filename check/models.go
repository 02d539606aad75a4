package check

import (
	"github.com/frodenas/driverfetch"
)

type CheckRequest struct {
	Source  driverfetch.Source  `json:"source"`
	Version driverfetch.Version `json:"version"`
}

type CheckResponse struct {
	Version  driverfetch.Version        `json:"version"`
	URL      string                     `json:"url"`
	Metadata []driverfetch.MetadataPair `json:"metadata"`
}
