// Package metrics turns per-frame quality measurements into per-bucket aggregates.
// It reads measurement CSV files, groups their rows by bitrate or QP, and
// derives MSE-averaged PSNR, arithmetic-mean PSNR, total size and real bitrate.
package metrics

import (
	"errors"
	"fmt"
)

// Private constants (alphabetical)
const (
	// errorPrefix is used as a prefix for all error messages from this package.
	errorPrefix = "metrics: "
)

// Public constants (alphabetical)
const (
	// ColumnBitrate holds the bucket key of bitrate driven encodes.
	ColumnBitrate = "Bitrate"

	// ColumnBytes holds the encoded size of a frame in bytes.
	ColumnBytes = "Bytes"

	// ColumnCodec holds the codec name used to look up the producing tool.
	ColumnCodec = "Codec"

	// ColumnPSNRU holds the per-frame chroma U PSNR.
	ColumnPSNRU = "PSNR-U"

	// ColumnPSNRV holds the per-frame chroma V PSNR.
	ColumnPSNRV = "PSNR-V"

	// ColumnPSNRY holds the per-frame luma PSNR.
	ColumnPSNRY = "PSNR-Y"

	// ColumnQP holds the bucket key of constant-QP encodes.
	ColumnQP = "QP"

	// FrameRate is the frame rate assumed when deriving the real bitrate.
	// Measurement files do not carry it.
	FrameRate = 30

	// MaxSample is the peak sample value of 8-bit video.
	MaxSample = 255
)

// Public variables (alphabetical)

var (
	// ErrEmptyBucket is returned when a bucket with no frames is aggregated.
	ErrEmptyBucket = errors.New(errorPrefix + "bucket has no frames")

	// ErrLengthMismatch is returned when the per-frame lists of a bucket disagree in length.
	ErrLengthMismatch = errors.New(errorPrefix + "per-frame lists differ in length")

	// ErrMissingColumn is returned when a measurement file lacks a required column.
	ErrMissingColumn = errors.New(errorPrefix + "missing required column")
)

// Public functions (alphabetical)

// FormatError creates an error message carrying the package prefix.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}
