package metrics

import (
	"fmt"
	"math"
)

// Private functions (alphabetical)

// mean returns the arithmetic mean of values, which must not be empty.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// msePSNR averages psnr values in the MSE domain.
func msePSNR(psnr []float64) float64 {
	mse := make([]float64, len(psnr))
	for i, p := range psnr {
		mse[i] = PSNRToMSE(p)
	}
	return MSEToPSNR(mean(mse))
}

// Public functions (alphabetical)

// MSEToPSNR converts a mean squared error to PSNR in dB for MaxSample peaks.
func MSEToPSNR(mse float64) float64 {
	return 10 * math.Log10(MaxSample*MaxSample/mse)
}

// PSNRToMSE converts a PSNR in dB to the mean squared error it stands for.
func PSNRToMSE(psnr float64) float64 {
	return MaxSample * MaxSample / math.Pow(10, psnr/10)
}

// Public methods (alphabetical)

// Aggregate derives the metrics of one bucket.
// PSNR is averaged through MSE while APSNR is the plain mean of frame PSNR.
// It fails with ErrEmptyBucket when the bucket has no frames and with
// ErrLengthMismatch when the per-frame lists disagree.
func (m *Metrics) Aggregate(bucket string) (Aggregate, error) {
	frames := len(m.PSNRY[bucket])
	if frames == 0 {
		return Aggregate{}, fmt.Errorf("%w: %q", ErrEmptyBucket, bucket)
	}
	if len(m.PSNRU[bucket]) != frames || len(m.PSNRV[bucket]) != frames || len(m.FrameSize[bucket]) != frames {
		return Aggregate{}, fmt.Errorf("%w: bucket %q", ErrLengthMismatch, bucket)
	}

	var fileSize int64
	for _, size := range m.FrameSize[bucket] {
		fileSize += size
	}

	return Aggregate{
		Bucket: bucket,
		Frames: frames,
		PSNR: Channels{
			Y: msePSNR(m.PSNRY[bucket]),
			U: msePSNR(m.PSNRU[bucket]),
			V: msePSNR(m.PSNRV[bucket]),
		},
		APSNR: Channels{
			Y: mean(m.PSNRY[bucket]),
			U: mean(m.PSNRU[bucket]),
			V: mean(m.PSNRV[bucket]),
		},
		FileSize:    fileSize,
		RealBitrate: float64(fileSize) / float64(frames) * FrameRate * 8,
	}, nil
}

// AggregateAll derives the metrics of every bucket in first-seen order.
func (m *Metrics) AggregateAll() ([]Aggregate, error) {
	aggregates := make([]Aggregate, 0, len(m.order))
	for _, bucket := range m.order {
		a, err := m.Aggregate(bucket)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, a)
	}
	return aggregates, nil
}
