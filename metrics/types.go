package metrics

// Private types (alphabetical)

// csvRow is one decoded line of a measurement file.
// Only one of Bitrate and QP is expected to be present in the header.
type csvRow struct {
	Codec   string  `csv:"Codec"`
	Bitrate string  `csv:"Bitrate"`
	QP      string  `csv:"QP"`
	PSNRY   float64 `csv:"PSNR-Y"`
	PSNRU   float64 `csv:"PSNR-U"`
	PSNRV   float64 `csv:"PSNR-V"`
	Bytes   int64   `csv:"Bytes"`
}

// Public types (alphabetical)

// Aggregate holds the derived metrics of one bitrate or QP bucket.
type Aggregate struct {
	// Bucket is the raw bitrate or QP value shared by the frames.
	Bucket string

	// Frames is the number of frames in the bucket.
	Frames int

	// PSNR is the per-channel PSNR averaged in the MSE domain.
	PSNR Channels

	// APSNR is the per-channel arithmetic mean of the frame PSNR values.
	APSNR Channels

	// FileSize is the sum of the frame sizes in bytes.
	FileSize int64

	// RealBitrate is the bitrate in bits per second implied by FileSize at FrameRate.
	RealBitrate float64
}

// Channels holds one value per Y, U and V plane.
type Channels struct {
	Y float64
	U float64
	V float64
}

// Metrics holds the per-frame samples of one measurement file grouped by bucket.
// The four per-bucket lists always have one entry per frame.
type Metrics struct {
	// Codec is the codec name of the last row read.
	Codec string

	// Stream is the stream name derived from the file name.
	Stream string

	// BucketColumn is the column the buckets were read from, ColumnBitrate or ColumnQP.
	BucketColumn string

	// PSNRY, PSNRU and PSNRV hold the per-frame PSNR values of each plane.
	PSNRY map[string][]float64
	PSNRU map[string][]float64
	PSNRV map[string][]float64

	// FrameSize holds the per-frame size in bytes.
	FrameSize map[string][]int64

	// order keeps buckets in the order they first appeared.
	order []string
}
