package tool

import "strings"

// Private constants (alphabetical)
const (
	// x264Template is the bitrate-driven x264 command, with {preset} filled per entry.
	x264Template = "x264 --preset {preset} --slices 1 --profile high -I 120 -i 120 --min-keyint 120 " +
		"--fps {framerate} --bitrate {bitrate} --vbv-bufsize {2*bitrate} --vbv-maxrate {bitrate} " +
		"--vbv-init {1.4*bitrate} --frames {frames} --input-res {width}x{height} --no-scenecut " +
		"--tune psnr -o {encoded} {stream}"

	// x265Template is the bitrate-driven x265 command, with {preset} filled per entry.
	x265Template = "x265 --preset {preset} --slices 1 -I 120 -i 120 --min-keyint 120 " +
		"--fps {framerate} --bitrate {bitrate} --vbv-bufsize {2*bitrate} --vbv-maxrate {bitrate} " +
		"--vbv-init {1.4*bitrate} --frames 999999 --input-res {width}x{height} --high-tier " +
		"--level-idc 52 -t psnr -o {encoded} {stream}"
)

// Private variables (alphabetical)

// builtinPresets pairs the codec name suffix used in measurement files with
// the encoder preset it stands for.
var builtinPresets = []struct {
	suffix string
	preset string
}{
	{"Fast", "fast"},
	{"Faster", "faster"},
	{"Medium", "medium"},
	{"Placebo", "placebo"},
	{"Slow", "slow"},
	{"Slower", "slower"},
	{"SuperFast", "superfast"},
	{"UltraFast", "ultrafast"},
	{"VeryFast", "veryfast"},
	{"VerySlow", "veryslow"},
}

// Public functions (alphabetical)

// DefaultRegistry returns the built-in x264/x265 preset table.
// Codecs are named like "x264Fast" and labelled like "x264-fast-arc".
func DefaultRegistry() *Registry {
	tools := make(map[string]Tool, 2*len(builtinPresets))
	for _, encoder := range []struct {
		name     string
		template string
	}{
		{"x264", x264Template},
		{"x265", x265Template},
	} {
		for _, p := range builtinPresets {
			tools[encoder.name+p.suffix] = Tool{
				Label:   encoder.name + "-" + p.preset + "-arc",
				Command: strings.Replace(encoder.template, "{preset}", p.preset, 1),
			}
		}
	}
	return &Registry{tools: tools}
}
