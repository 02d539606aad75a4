package in

import (
	"github.com/frodenas/driverfetch"
)

type InRequest struct {
	Source  driverfetch.Source  `json:"source"`
	Version driverfetch.Version `json:"version"`
	Params  Params              `json:"params"`
}

type Params struct {
	WriteMetadata bool `json:"write_metadata" yaml:"write_metadata"`
}

type InResponse struct {
	Version  driverfetch.Version        `json:"version"`
	Metadata []driverfetch.MetadataPair `json:"metadata"`
}
