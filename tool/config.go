package tool

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Private functions (alphabetical)

// toolFromEntry converts a config entry into a Tool.
// A "command-line-cqp" entry yields a CQP tool whose command is the CQP
// template, unless legacy is set, in which case "command-line" is kept.
func toolFromEntry(entry configEntry, legacy bool) Tool {
	t := Tool{Label: entry.Label}
	if entry.CommandLineCQP != nil {
		t.CQP = true
		if !legacy {
			t.Command = *entry.CommandLineCQP
			return t
		}
	}
	if entry.CommandLine != nil {
		t.Command = *entry.CommandLine
	}
	return t
}

// Public functions (alphabetical)

// LoadConfig reads the tool registry file at path and builds a Registry.
// Entries without a codec are skipped. It fails with ErrConfigNotFound,
// ErrMissingTools or ErrNoTools when the file cannot produce a usable registry.
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, FormatError("error reading %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig builds a Registry from the YAML content of a tool registry file.
func ParseConfig(data []byte) (*Registry, error) {
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, FormatError("error parsing config: %w", err)
	}

	if cfg.Tools == nil {
		return nil, ErrMissingTools
	}

	tools := make(map[string]Tool)
	for _, entry := range *cfg.Tools {
		if entry.Codec == nil {
			continue
		}
		tools[*entry.Codec] = toolFromEntry(entry, cfg.LegacyCQPCommand)
	}

	if len(tools) == 0 {
		return nil, ErrNoTools
	}

	return &Registry{tools: tools}, nil
}
