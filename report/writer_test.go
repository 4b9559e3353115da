package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/torre76/edcache/metrics"
	"github.com/torre76/edcache/tool"
	"gopkg.in/yaml.v3"
)

// testCommand is the command template registered for the test codec.
const testCommand = "x264 --preset fast --bitrate {bitrate} -o {encoded} {stream}"

// WriterTestSuite covers the cache layout and document content.
type WriterTestSuite struct {
	suite.Suite
	root     string
	registry *tool.Registry
	writer   *Writer
	tool     tool.Tool
}

// SetupTest creates a writer over a fresh cache root.
func (s *WriterTestSuite) SetupTest() {
	s.root = filepath.Join(s.T().TempDir(), DefaultRoot)
	s.tool = tool.Tool{Label: "x264-fast", Command: testCommand}
	s.registry = tool.NewRegistry(map[string]tool.Tool{"x264Fast": s.tool})
	s.writer = NewWriter(s.root, s.registry)
}

// sampleMetrics returns a two-frame bucket "5000" plus a one-frame bucket "3000".
func (s *WriterTestSuite) sampleMetrics() *metrics.Metrics {
	m := metrics.NewMetrics("foo_bar")
	m.Codec = "x264Fast"
	m.Add("5000", 40.0, 45.5, 46.0, 1000)
	m.Add("3000", 37.0, 43.0, 44.0, 600)
	m.Add("5000", 42.0, 45.0, 46.5, 1200)
	return m
}

// readFile returns the content of path.
func (s *WriterTestSuite) readFile(path string) string {
	data, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	return string(data)
}

// TestFileNames checks the document naming scheme.
func (s *WriterTestSuite) TestFileNames() {
	s.Equal("5000.foo_bar.yuv.yaml", SummaryFileName("5000", "foo_bar"))
	s.Equal("5000.foo_bar.yuv.details.yaml", DetailsFileName("5000", "foo_bar"))
	s.Equal("22..yuv.yaml", SummaryFileName("22", ""))
}

// TestToolDir checks that the directory is keyed by label and fingerprint.
func (s *WriterTestSuite) TestToolDir() {
	s.Equal(filepath.Join(s.root, "x264-fast."+s.tool.Fingerprint()), s.writer.ToolDir(s.tool))
	s.Equal(s.root, s.writer.Root())
}

// TestWrite checks the written paths and the summary document.
func (s *WriterTestSuite) TestWrite() {
	written, err := s.writer.Write(s.sampleMetrics())
	s.Require().NoError(err)

	dir := s.writer.ToolDir(s.tool)
	s.Equal([]string{
		filepath.Join(dir, "5000.foo_bar.yuv.yaml"),
		filepath.Join(dir, "5000.foo_bar.yuv.details.yaml"),
		filepath.Join(dir, "3000.foo_bar.yuv.yaml"),
		filepath.Join(dir, "3000.foo_bar.yuv.details.yaml"),
	}, written)

	var summary Summary
	s.Require().NoError(yaml.Unmarshal([]byte(s.readFile(written[0])), &summary))

	s.Equal(2, summary.Extra.Frames)
	s.Equal(int64(2200), summary.FileSize)
	s.InDelta(41.0, float64(summary.Metrics.APSNR.Y), 1e-12)
	s.InDelta(40.88587392869641, float64(summary.Metrics.PSNR.Y), 1e-9)
	s.NotEqual(41.0, float64(summary.Metrics.PSNR.Y))
	s.Equal(Float(264000), summary.RealBitrate)
	s.Equal(testCommand, summary.ToolCommand)
	s.Equal(DefaultPlatform, summary.Platform)
	s.Equal(DefaultFPS, summary.FPS)
	s.Equal(100, summary.Extra.CPUPercent)
	s.Equal("100", summary.Extra.CPUUsage)
}

// TestSummaryLayout checks key order and float formatting of the raw document.
func (s *WriterTestSuite) TestSummaryLayout() {
	written, err := s.writer.Write(s.sampleMetrics())
	s.Require().NoError(err)

	content := s.readFile(written[0])
	s.True(strings.HasPrefix(content, "FPS: 22.05\nextra:\n"), content)
	s.Contains(content, "file_size: 2200\n")
	s.Contains(content, "real_bitrate: 264000.0\n")
	s.Contains(content, "  APSNR:\n    U: 45.25\n    V: 46.25\n    Y: 41.0\n")
	s.NotContains(content, `"Y"`)
	s.Contains(content, "tool_command: "+testCommand+"\n")

	order := []string{"FPS:", "extra:", "file_size:", "metrics:", "platform:", "real_bitrate:", "tool_command:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(content, "\n"+key)
		if key == "FPS:" {
			idx = 0
		}
		s.Greater(idx, last, "key %s out of order", key)
		last = idx
	}
}

// TestDetails checks that detail entries follow row order.
func (s *WriterTestSuite) TestDetails() {
	written, err := s.writer.Write(s.sampleMetrics())
	s.Require().NoError(err)

	var details []DetailEntry
	s.Require().NoError(yaml.Unmarshal([]byte(s.readFile(written[1])), &details))

	s.Equal([]DetailEntry{
		{PSNR: Planes{Y: 40.0, U: 45.5, V: 46.0}, FrameSize: 1000},
		{PSNR: Planes{Y: 42.0, U: 45.0, V: 46.5}, FrameSize: 1200},
	}, details)

	content := s.readFile(written[1])
	s.True(strings.HasPrefix(content, "- PSNR:\n"), content)
	s.Contains(content, "- PSNR:\n    U: 45.5\n    V: 46.0\n    Y: 40.0\n  frame_size: 1000\n")
}

// TestPlanesMarshal checks that plane keys are written plain and sorted.
func (s *WriterTestSuite) TestPlanesMarshal() {
	out, err := yaml.Marshal(Planes{Y: 41, U: 45.25, V: 46.25})
	s.Require().NoError(err)
	s.Equal("U: 45.25\nV: 46.25\nY: 41.0\n", string(out))

	var planes Planes
	s.Require().NoError(yaml.Unmarshal(out, &planes))
	s.Equal(Planes{Y: 41, U: 45.25, V: 46.25}, planes)
}

// TestWriteBlankCodec checks that rows without a codec fail the lookup.
func (s *WriterTestSuite) TestWriteBlankCodec() {
	m := metrics.NewMetrics("foo_bar")
	m.Add("5000", 40.0, 45.5, 46.0, 1000)

	written, err := s.writer.Write(m)
	s.ErrorIs(err, tool.ErrUnknownCodec)
	s.Contains(err.Error(), `""`)
	s.Empty(written)

	_, err = os.Stat(s.root)
	s.True(os.IsNotExist(err))
}

// TestWriteOverwrites checks that documents are truncated on rewrite.
func (s *WriterTestSuite) TestWriteOverwrites() {
	written, err := s.writer.Write(s.sampleMetrics())
	s.Require().NoError(err)

	stale := strings.Repeat("# stale\n", 1000)
	s.Require().NoError(os.WriteFile(written[1], []byte(stale), 0644))

	rewritten, err := s.writer.Write(s.sampleMetrics())
	s.Require().NoError(err)
	s.Equal(written, rewritten)
	s.NotContains(s.readFile(written[1]), "# stale")
}

// TestWriteEmpty checks that empty Metrics write nothing.
func (s *WriterTestSuite) TestWriteEmpty() {
	written, err := s.writer.Write(metrics.NewMetrics("foo"))
	s.NoError(err)
	s.Empty(written)

	_, err = os.Stat(s.root)
	s.True(os.IsNotExist(err))
}

// TestWriteUnknownCodec checks that an unregistered codec is reported by name.
func (s *WriterTestSuite) TestWriteUnknownCodec() {
	m := s.sampleMetrics()
	m.Codec = "vp9Good"

	_, err := s.writer.Write(m)
	s.ErrorIs(err, tool.ErrUnknownCodec)
	s.Contains(err.Error(), "vp9Good")

	_, err = os.Stat(s.root)
	s.True(os.IsNotExist(err))
}

// TestWriteInconsistentBucket checks that aggregation errors name the stream
// and the bucket column, and that nothing is written.
func (s *WriterTestSuite) TestWriteInconsistentBucket() {
	m := metrics.NewMetrics("foo_bar")
	m.Codec = "x264Fast"
	m.BucketColumn = metrics.ColumnQP
	m.Add("22", 44.0, 47.0, 47.5, 9000)
	m.PSNRU["22"] = append(m.PSNRU["22"], 46.0)

	written, err := s.writer.Write(m)
	s.ErrorIs(err, metrics.ErrLengthMismatch)
	s.Contains(err.Error(), `stream "foo_bar", QP buckets`)
	s.Empty(written)

	_, err = os.Stat(s.root)
	s.True(os.IsNotExist(err))
}

// TestFloatMarshal checks the YAML form of floats.
func (s *WriterTestSuite) TestFloatMarshal() {
	testCases := []struct {
		name     string
		input    Float
		expected string
	}{
		{
			name:     "integral",
			input:    48000,
			expected: "48000.0\n",
		},
		{
			name:     "fraction",
			input:    22.05,
			expected: "22.05\n",
		},
		{
			name:     "negative",
			input:    -1.5,
			expected: "-1.5\n",
		},
		{
			name:     "zero",
			input:    0,
			expected: "0.0\n",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := yaml.Marshal(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, string(out))
		})
	}
}

func TestWriterSuite(t *testing.T) {
	suite.Run(t, new(WriterTestSuite))
}
