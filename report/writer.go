package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/torre76/edcache/metrics"
	"github.com/torre76/edcache/tool"
	"gopkg.in/yaml.v3"
)

// Private functions (alphabetical)

// planes converts aggregated channels into their document form.
func planes(c metrics.Channels) Planes {
	return Planes{Y: Float(c.Y), U: Float(c.U), V: Float(c.V)}
}

// writeYAML truncates path and writes v to it as a single YAML document.
// The file is closed on every path; a close error is reported like a write error.
func writeYAML(path string, v interface{}) error {
	// Create truncates, so a rewrite never keeps stale trailing content
	file, err := os.Create(path)
	if err != nil {
		return FormatError("error creating %s: %w", path, err)
	}

	// Two-space indentation matches the documents already in the cache
	enc := yaml.NewEncoder(file)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		file.Close()
		return FormatError("error encoding %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		file.Close()
		return FormatError("error flushing %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return FormatError("error closing %s: %w", path, err)
	}
	return nil
}

// Public functions (alphabetical)

// DetailsFileName returns the detail document name of a bucket and stream.
func DetailsFileName(bucket, stream string) string {
	return bucket + "." + stream + DetailsSuffix
}

// NewDetails builds the per-frame entries of a bucket in row order.
func NewDetails(m *metrics.Metrics, bucket string) []DetailEntry {
	frames := m.Frames(bucket)
	details := make([]DetailEntry, 0, frames)
	for i := 0; i < frames; i++ {
		details = append(details, DetailEntry{
			PSNR: Planes{
				Y: Float(m.PSNRY[bucket][i]),
				U: Float(m.PSNRU[bucket][i]),
				V: Float(m.PSNRV[bucket][i]),
			},
			FrameSize: m.FrameSize[bucket][i],
		})
	}
	return details
}

// NewSummary builds the summary document of an aggregated bucket.
// The tool command is written as the raw template, placeholders included.
// Platform and encoder timing fields carry fixed stand-in values.
func NewSummary(a metrics.Aggregate, t tool.Tool) Summary {
	extra := DefaultExtra
	extra.Frames = a.Frames

	return Summary{
		FPS:      DefaultFPS,
		Extra:    extra,
		FileSize: a.FileSize,
		Metrics: QualityMetrics{
			APSNR: planes(a.APSNR),
			PSNR:  planes(a.PSNR),
		},
		Platform:    DefaultPlatform,
		RealBitrate: Float(a.RealBitrate),
		ToolCommand: t.Command,
	}
}

// NewWriter creates a Writer storing documents under root and resolving
// codecs through registry.
func NewWriter(root string, registry *tool.Registry) *Writer {
	return &Writer{
		root:     root,
		registry: registry,
	}
}

// SummaryFileName returns the summary document name of a bucket and stream.
func SummaryFileName(bucket, stream string) string {
	return bucket + "." + stream + SummarySuffix
}

// Public methods (alphabetical)

// Root returns the cache root directory.
func (w *Writer) Root() string {
	return w.root
}

// ToolDir returns the cache directory of t: "{root}/{label}.{fingerprint}".
func (w *Writer) ToolDir(t tool.Tool) string {
	return filepath.Join(w.root, t.DirName())
}

// Write stores the summary and detail documents of every bucket of m and
// returns the written paths in bucket order. Existing documents are overwritten.
//
// Metrics without frames write nothing. An unregistered codec, the empty
// codec included, fails with tool.ErrUnknownCodec before anything is written.
// On a write error the paths written so far are returned with the error.
func (w *Writer) Write(m *metrics.Metrics) ([]string, error) {
	if m.IsEmpty() {
		return nil, nil
	}

	// A blank codec is looked up like any other and fails the same way
	t, err := w.registry.Lookup(m.Codec)
	if err != nil {
		return nil, err
	}

	// Aggregate everything first so a bad bucket leaves no partial output
	aggregates, err := m.AggregateAll()
	if err != nil {
		return nil, fmt.Errorf("stream %q, %s buckets: %w", m.Stream, m.BucketColumn, err)
	}

	dir := w.ToolDir(t)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, FormatError("error creating output directory: %w", err)
	}

	// Each bucket gets its summary followed by its per-frame details
	written := make([]string, 0, 2*len(aggregates))
	for _, a := range aggregates {
		summaryPath := filepath.Join(dir, SummaryFileName(a.Bucket, m.Stream))
		if err := writeYAML(summaryPath, NewSummary(a, t)); err != nil {
			return written, err
		}
		written = append(written, summaryPath)

		detailsPath := filepath.Join(dir, DetailsFileName(a.Bucket, m.Stream))
		if err := writeYAML(detailsPath, NewDetails(m, a.Bucket)); err != nil {
			return written, err
		}
		written = append(written, detailsPath)
	}

	return written, nil
}
