package app

import (
	"errors"
	"fmt"
)

// Report formats accepted by Config.Report.
const (
	ReportText = "text"
	ReportJSON = "json"
	ReportNone = "none"

	// ReportSchema writes the JSON Schema of the json report instead of a
	// report.
	ReportSchema = "schema"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModsPath   string // mod manifests, a directory or a single .hcl file
	ConfigPath string // optional session settings

	// Extensions names the built-in Go extensions to load before the
	// manifest mods, in order.
	Extensions []string

	LogFormat   string
	LogLevel    string
	Report      string
	InspectPort int
	Unload      bool

	// SyncURL is the socket.io endpoint that receives owner packets. Packets
	// are kept in memory when empty.
	SyncURL string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModsPath == "" && len(cfg.Extensions) == 0 {
		return nil, errors.New("ModsPath is a required configuration field unless extensions are selected")
	}
	switch cfg.Report {
	case "":
		cfg.Report = ReportText
	case ReportText, ReportJSON, ReportNone, ReportSchema:
	default:
		return nil, fmt.Errorf("invalid report format %q: must be one of text, json, none, schema", cfg.Report)
	}
	if cfg.InspectPort < 0 {
		return nil, fmt.Errorf("invalid inspect port %d", cfg.InspectPort)
	}
	return &cfg, nil
}
