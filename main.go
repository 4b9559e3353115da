// Package main provides the entry point for the edcache application.
// It converts per-stream quality measurement CSV files into the per-tool,
// per-bitrate YAML cache read by the encoder comparison system.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/schollz/progressbar/v3"
	"github.com/torre76/edcache/metrics"
	"github.com/torre76/edcache/report"
	"github.com/torre76/edcache/tool"
	"github.com/urfave/cli/v2"
)

// Private constants (alphabetical)
const (
	// defaultDataDir is the directory scanned for measurement files.
	defaultDataDir = "data"

	// defaultPattern selects the measurement files inside the data directory.
	defaultPattern = "*.csv"
)

// Private types (alphabetical)

// runStats counts what a conversion run did.
// Encoding points are counted per bucket column since bitrate and QP files
// describe different kinds of runs.
type runStats struct {
	Files         int
	Skipped       int
	BitratePoints int
	QPPoints      int
	Frames        int
	Reports       int
}

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'main.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// convertCommand implements the default command which rebuilds the cache.
// It loads the tool registry, converts every measurement file and prints a
// summary of the run.
func convertCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	// At most the config file may be given
	if c.NArg() > 1 {
		return fmt.Errorf("expected at most one argument, got %d", c.NArg())
	}

	start := time.Now()

	// Build the tool registry once for the whole run
	registry, source, err := loadRegistry(c)
	if err != nil {
		return err
	}

	regularStyle.Printf("🔧 Using tools from ")
	valueStyle.Printf("%s", source)
	regularStyle.Printf(" (%s)\n", pluralize.NewClient().Pluralize("codec", registry.Len(), true))

	// Find the measurement files, sorted for a deterministic run
	files, err := discoverInputs(c.String("data"), c.String("pattern"))
	if err != nil {
		return err
	}

	// Convert every file into the cache
	writer := report.NewWriter(c.String("cache"), registry)
	bar := newProgressBar(len(files), os.Stderr, c.Bool("quiet"))

	stats, err := processFiles(files, writer, bar)
	if err != nil {
		return err
	}

	printRunSummary(stats, writer.Root(), time.Since(start))
	return nil
}

// discoverInputs returns the files in dataDir matching pattern, sorted by name.
// A missing data directory simply yields no files.
func discoverInputs(dataDir, pattern string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dataDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

// formatWithThousandSeparators formats an integer with thousand separators.
// It takes an int64 value and returns a string with commas separating thousands.
func formatWithThousandSeparators(n int64) string {
	// Convert the number to a string
	inStr := strconv.FormatInt(n, 10)

	// Negative numbers keep their sign out of the grouping
	sign := ""
	if n < 0 {
		sign = "-"
		inStr = inStr[1:]
	}

	// Add thousand separators
	var result strings.Builder
	for i, c := range inStr {
		if i > 0 && (len(inStr)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}

	return sign + result.String()
}

// loadRegistry builds the tool registry, either from the built-in preset
// table or from the config file named by the first argument.
// It also returns a description of where the tools came from.
func loadRegistry(c *cli.Context) (*tool.Registry, string, error) {
	// The built-in table ignores any config argument
	if c.Bool("builtin") {
		return tool.DefaultRegistry(), "built-in presets", nil
	}

	// Fall back to the config file in the working directory
	configPath := tool.DefaultConfigFile
	if c.NArg() > 0 {
		configPath = c.Args().Get(0)
	}

	registry, err := tool.LoadConfig(configPath)
	if err != nil {
		return nil, "", err
	}
	return registry, configPath, nil
}

// newApp builds the command line application.
// Every flag defaults to the historical fixed location or behaviour.
func newApp() *cli.App {
	return &cli.App{
		Name:  "edcache",
		Usage: "Convert quality measurement CSV files into the encoder comparison cache",
		Description: "edcache groups per-frame PSNR and size samples by bitrate or QP, derives " +
			"MSE-averaged PSNR, APSNR, file size and real bitrate, and writes one summary and one " +
			"per-frame detail YAML document per bitrate point under a directory named after the tool.",
		Version:   Version,
		Action:    convertCommand,
		ArgsUsage: "[CONFIG]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Directory containing the measurement CSV files",
				Value:   defaultDataDir,
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "Glob selecting measurement files inside the data directory",
				Value:   defaultPattern,
			},
			&cli.StringFlag{
				Name:    "cache",
				Aliases: []string{"c"},
				Usage:   "Directory where the YAML cache is written",
				Value:   report.DefaultRoot,
			},
			&cli.BoolFlag{
				Name:    "builtin",
				Aliases: []string{"b"},
				Usage:   "Use the built-in x264/x265 preset table instead of CONFIG",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not show the progress bar",
			},
		},
	}
}

// newProgressBar creates the per-file progress bar writing to w.
// Quiet runs get a silent bar so the run loop never has to check for one.
func newProgressBar(total int, w io.Writer, quiet bool) *progressbar.ProgressBar {
	if quiet {
		return progressbar.DefaultSilent(int64(total))
	}

	// The bar is cleared on finish so the run summary starts on a clean line
	return progressbar.NewOptions(
		total,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Converting [",
			BarEnd:        "]",
		}),
	)
}

// printRunSummary prints what the run produced with pluralized counts.
// Point counts are only shown for the bucket columns that were seen.
func printRunSummary(stats runStats, root string, elapsed time.Duration) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)

	pluralizeClient := pluralize.NewClient()

	summaryStyle.Println("\nℹ️ RUN SUMMARY")
	regularStyle.Println("----------------")

	regularStyle.Printf("📄 %d ", stats.Files)
	valueStyle.Print(pluralizeClient.Pluralize("measurement file", stats.Files, false))
	if stats.Skipped > 0 {
		regularStyle.Printf(" (%d skipped as empty)", stats.Skipped)
	}
	fmt.Println()

	// Encoding points, split by the column their buckets came from
	if stats.BitratePoints > 0 || stats.QPPoints == 0 {
		regularStyle.Printf("📦 %d ", stats.BitratePoints)
		valueStyle.Println(pluralizeClient.Pluralize("bitrate point", stats.BitratePoints, false))
	}
	if stats.QPPoints > 0 {
		regularStyle.Printf("📦 %d ", stats.QPPoints)
		valueStyle.Println(pluralizeClient.Pluralize("QP point", stats.QPPoints, false))
	}

	regularStyle.Printf("🎞️ %s ", formatWithThousandSeparators(int64(stats.Frames)))
	valueStyle.Println(pluralizeClient.Pluralize("frame", stats.Frames, false))

	regularStyle.Printf("📝 %d ", stats.Reports)
	valueStyle.Println(pluralizeClient.Pluralize("report", stats.Reports, false))

	successStyle.Printf("\n✅ Cache written to %s in %s\n", root, elapsed.Round(time.Millisecond))
}

// processFiles converts every file in order and stops at the first error.
// Files without data rows are counted as skipped. The returned stats cover
// the files handled before any error.
func processFiles(files []string, writer *report.Writer, bar *progressbar.ProgressBar) (runStats, error) {
	stats := runStats{Files: len(files)}

	for _, file := range files {
		bar.Describe(filepath.Base(file))

		// Read and group the measurement rows
		m, err := metrics.LoadCSV(file)
		if err != nil {
			return stats, err
		}

		if m.IsEmpty() {
			stats.Skipped++
		} else {
			// Aggregate every bucket and write its documents
			written, err := writer.Write(m)
			if err != nil {
				return stats, fmt.Errorf("%s: %w", file, err)
			}
			stats.Reports += len(written)

			for _, bucket := range m.Buckets() {
				if m.BucketColumn == metrics.ColumnQP {
					stats.QPPoints++
				} else {
					stats.BitratePoints++
				}
				stats.Frames += m.Frames(bucket)
			}
		}

		if err := bar.Add(1); err != nil {
			return stats, fmt.Errorf("error updating progress: %w", err)
		}
	}

	if err := bar.Finish(); err != nil {
		return stats, fmt.Errorf("error finishing progress: %w", err)
	}
	return stats, nil
}

// versionPrinter prints version information in a custom format.
// It displays the version, build date, and commit hash.
func versionPrinter(c *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🗄️ edcache %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// main is the entry point of the application.
// It runs the command line application and exits with status 1 on any error.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	if err := newApp().Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
