// Package hashconfig holds the server's small configuration surface: CLI
// flags supply the base configuration, and an optional YAML file's
// non-zero fields are merged over it.
package hashconfig

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/hashassin/hashassin/internal/herrors"
)

// Server is the hashassin server's full configuration.
type Server struct {
	Bind           string `yaml:"bind"`
	Port           int    `yaml:"port"`
	ComputeThreads int    `yaml:"compute_threads"`
	AsyncThreads   int    `yaml:"async_threads"`
	CacheSize      int64  `yaml:"cache_size"`
}

// Default returns the configuration's zero-config defaults.
func Default() Server {
	return Server{
		Bind:           "127.0.0.1",
		Port:           2025,
		ComputeThreads: 1,
		AsyncThreads:   1,
	}
}

// LoadFile merges a YAML configuration file's fields over base, returning
// the merged result. A field left unset (zero value) in the file does not
// override base.
func LoadFile(path string, base Server) (Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Server{}, herrors.Wrap(herrors.IO, err, "reading config file %q", path)
	}

	var file Server
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Server{}, herrors.Wrap(herrors.Internal, err, "parsing config file %q", path)
	}

	merged := base
	if file.Bind != "" {
		merged.Bind = file.Bind
	}
	if file.Port != 0 {
		merged.Port = file.Port
	}
	if file.ComputeThreads != 0 {
		merged.ComputeThreads = file.ComputeThreads
	}
	if file.AsyncThreads != 0 {
		merged.AsyncThreads = file.AsyncThreads
	}
	if file.CacheSize != 0 {
		merged.CacheSize = file.CacheSize
	}
	return merged, nil
}
