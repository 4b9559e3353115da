package report

import "github.com/torre76/edcache/tool"

// Public types (alphabetical)

// DetailEntry is the record of one frame in a detail document.
type DetailEntry struct {
	PSNR      Planes `yaml:"PSNR"`
	FrameSize int64  `yaml:"frame_size"`
}

// Extra holds resource usage fields plus the frame count of the bucket.
type Extra struct {
	CPUPercent int    `yaml:"CPU_percent"`
	CPUUsage   string `yaml:"CPU_usage"`
	FPS        int    `yaml:"FPS"`
	EncodeTime int    `yaml:"encode_time"`
	Frames     int    `yaml:"frames"`
}

// Planes holds one value per Y, U and V plane.
type Planes struct {
	Y Float `yaml:"Y"`
	U Float `yaml:"U"`
	V Float `yaml:"V"`
}

// Platform describes the machine the encode ran on.
type Platform struct {
	CPU         string `yaml:"CPU"`
	OS          string `yaml:"OS"`
	Hostname    string `yaml:"hostname"`
	PowerPlan   string `yaml:"power_plan"`
	VideoDriver string `yaml:"video_driver"`
}

// QualityMetrics holds the two PSNR averages of a bucket.
type QualityMetrics struct {
	// APSNR is the arithmetic mean of the frame PSNR values.
	APSNR Planes `yaml:"APSNR"`

	// PSNR is the PSNR averaged in the MSE domain.
	PSNR Planes `yaml:"PSNR"`
}

// Summary is the document written for every bucket.
// Field order is the key order of the written YAML, which is sorted by key
// as the comparison system has always received it.
type Summary struct {
	FPS         Float          `yaml:"FPS"`
	Extra       Extra          `yaml:"extra"`
	FileSize    int64          `yaml:"file_size"`
	Metrics     QualityMetrics `yaml:"metrics"`
	Platform    Platform       `yaml:"platform"`
	RealBitrate Float          `yaml:"real_bitrate"`
	ToolCommand string         `yaml:"tool_command"`
}

// Writer stores summary and detail documents under a cache root.
type Writer struct {
	root     string
	registry *tool.Registry
}
