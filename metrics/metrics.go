package metrics

// Public functions (alphabetical)

// NewMetrics creates an empty Metrics for the given stream.
func NewMetrics(stream string) *Metrics {
	return &Metrics{
		Stream:    stream,
		PSNRY:     make(map[string][]float64),
		PSNRU:     make(map[string][]float64),
		PSNRV:     make(map[string][]float64),
		FrameSize: make(map[string][]int64),
	}
}

// Public methods (alphabetical)

// Add appends one frame to bucket, creating the bucket on first use.
func (m *Metrics) Add(bucket string, psnrY, psnrU, psnrV float64, size int64) {
	if _, ok := m.PSNRY[bucket]; !ok {
		m.order = append(m.order, bucket)
	}
	m.PSNRY[bucket] = append(m.PSNRY[bucket], psnrY)
	m.PSNRU[bucket] = append(m.PSNRU[bucket], psnrU)
	m.PSNRV[bucket] = append(m.PSNRV[bucket], psnrV)
	m.FrameSize[bucket] = append(m.FrameSize[bucket], size)
}

// Buckets returns the bucket keys in the order they first appeared.
func (m *Metrics) Buckets() []string {
	buckets := make([]string, len(m.order))
	copy(buckets, m.order)
	return buckets
}

// Frames returns the number of frames recorded for bucket.
func (m *Metrics) Frames(bucket string) int {
	return len(m.PSNRY[bucket])
}

// IsEmpty reports whether no frame was recorded, which happens for files
// without data rows. Empty Metrics produce no output.
// A blank codec does not make Metrics empty: its frames still need a tool.
func (m *Metrics) IsEmpty() bool {
	return len(m.order) == 0
}
