package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
)

// Private variables (alphabetical)

// requiredColumns must all be present in the header of a measurement file.
var requiredColumns = []string{ColumnCodec, ColumnPSNRY, ColumnPSNRU, ColumnPSNRV, ColumnBytes}

// Private functions (alphabetical)

// bucketColumn checks the header for the required columns and returns the
// column holding the bucket key. Bitrate wins when both are present.
func bucketColumn(header []string) (string, error) {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	for _, name := range requiredColumns {
		if !present[name] {
			return "", fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	switch {
	case present[ColumnBitrate]:
		return ColumnBitrate, nil
	case present[ColumnQP]:
		return ColumnQP, nil
	default:
		return "", fmt.Errorf("%w: %s or %s", ErrMissingColumn, ColumnBitrate, ColumnQP)
	}
}

// Public functions (alphabetical)

// LoadCSV reads the measurement file at path.
// The stream name is derived from the file name with StreamName.
func LoadCSV(path string) (*Metrics, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, FormatError("error opening %s: %w", path, err)
	}
	defer file.Close()

	m, err := ReadCSV(file, StreamName(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadCSV decodes measurement rows from r into a Metrics for stream.
// A reader without data rows, header-only included, yields an empty Metrics
// and no error.
func ReadCSV(r io.Reader, stream string) (*Metrics, error) {
	m := NewMetrics(stream)

	// Values are often written as "a, b"; only the leading space is dropped
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, FormatError("error reading header: %w", err)
	}

	// Header problems only matter once there is a data row to read.
	column, headerErr := bucketColumn(dec.Header())
	m.BucketColumn = column

	for line := 2; ; line++ {
		var row csvRow
		err := dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}
		if headerErr != nil {
			return nil, headerErr
		}
		if err != nil {
			return nil, FormatError("error decoding line %d: %w", line, err)
		}

		m.Codec = row.Codec

		bucket := row.Bitrate
		if column == ColumnQP {
			bucket = row.QP
		}
		m.Add(bucket, row.PSNRY, row.PSNRU, row.PSNRV, row.Bytes)
	}

	return m, nil
}

// StreamName derives the stream name from a measurement file name by dropping
// the last "_" separated segment: "foo_bar_1080p.csv" gives "foo_bar".
// A name without "_" gives the empty string.
func StreamName(path string) string {
	parts := strings.Split(filepath.Base(path), "_")
	return strings.Join(parts[:len(parts)-1], "_")
}
