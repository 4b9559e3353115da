// Package report writes the YAML cache consumed by the comparison system.
// Every bucket of a measurement file yields a summary document and a
// per-frame detail document, stored under a directory named after the tool
// that produced the data.
package report

import "fmt"

// Private constants (alphabetical)
const (
	// errorPrefix is used as a prefix for all error messages from this package.
	errorPrefix = "report: "

	// yamlIndent is the indentation used for every written document.
	yamlIndent = 2
)

// Public constants (alphabetical)
const (
	// DefaultRoot is the cache directory used when none is configured.
	DefaultRoot = ".cache"

	// DetailsSuffix ends the name of every per-frame detail document.
	DetailsSuffix = ".yuv.details.yaml"

	// SummarySuffix ends the name of every summary document.
	SummarySuffix = ".yuv.yaml"
)

// Public variables (alphabetical)

// DefaultExtra holds the resource usage stand-ins written to every summary.
// Nothing is measured; the downstream system only requires the fields.
var DefaultExtra = Extra{
	CPUPercent: 100,
	CPUUsage:   "100",
	FPS:        60,
	EncodeTime: 0,
}

// DefaultFPS is the encoding speed stand-in written to every summary.
var DefaultFPS Float = 22.05

// DefaultPlatform holds the platform stand-ins written to every summary.
var DefaultPlatform = Platform{
	CPU:         "Intel64 Family 6 Model 141 Stepping 0",
	OS:          "Microsoft Windows 10 Pro 10.0.19042",
	Hostname:    "gtapc",
	PowerPlan:   "Balanced",
	VideoDriver: "master-7524",
}

// Public functions (alphabetical)

// FormatError creates an error message carrying the package prefix.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}
