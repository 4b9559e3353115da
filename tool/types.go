package tool

// Private types (alphabetical)

// configEntry is a single item of the "tools" list in the registry file.
// Pointers distinguish a missing key from an empty value.
type configEntry struct {
	Codec          *string `yaml:"codec"`
	Label          string  `yaml:"label"`
	CommandLine    *string `yaml:"command-line"`
	CommandLineCQP *string `yaml:"command-line-cqp"`
}

// configFile is the on-disk layout of the tool registry file.
type configFile struct {
	// LegacyCQPCommand stores "command-line" for CQP entries, as older caches did.
	LegacyCQPCommand bool           `yaml:"legacy-cqp-command"`
	Tools            *[]configEntry `yaml:"tools"`
}

// Public types (alphabetical)

// Registry maps codec names to the Tool that produced them.
// It is built once and only read afterwards.
type Registry struct {
	tools map[string]Tool
}

// Tool identifies an encoding configuration.
type Tool struct {
	// Label is the human readable name used in the cache directory name.
	Label string

	// Command is the command template. Placeholders such as {bitrate} are kept verbatim.
	Command string

	// CQP is true when the template drives a constant-QP encode.
	CQP bool
}
