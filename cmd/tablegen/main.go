// Command tablegen builds and verifies the suit lookup tables the
// shanten package's runtime core reads at start of day.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tsumogiri/shanten/config"
	"github.com/tsumogiri/shanten/internal/tablecheck"
	"github.com/tsumogiri/shanten/internal/tablegen"
	"github.com/tsumogiri/shanten/tablefmt"
)

const (
	numberedBaseName = "numbered"
	honorBaseName    = "honor"
	manifestBaseName = "manifest"
)

// tableFileNames returns the numbered/honor/manifest file names for
// convention, with the file name itself encoding which convention
// produced it (spec.md §6, "Separate files... the file name encodes
// which"): e.g. numbered.bin/honor.bin for ConventionStandard,
// numbered_nyanten.bin/honor_nyanten.bin for ConventionNyanten.
func tableFileNames(convention tablegen.Convention) (numbered, honor, manifest string) {
	suffix := convention.FileSuffix()
	return numberedBaseName + suffix + ".bin",
		honorBaseName + suffix + ".bin",
		manifestBaseName + suffix + ".json"
}

var configFile string

var rootCmd = &cobra.Command{
	Use:   "tablegen",
	Short: "suit lookup table generator",
	Long:  "tablegen builds and verifies the numbered- and honor-suit shanten tables.",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "build the numbered- and honor-suit tables and write them to disk",
	RunE:  runGenerate,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "read back a generated table and check spec invariants",
	RunE:  runVerify,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file (yaml/json/toml)")
	generateCmd.Flags().String("outputDir", "", "directory to write tables into (overrides config)")
	generateCmd.Flags().Int("workers", 0, "worker goroutine cap (overrides config, 0 = host CPU count)")
	generateCmd.Flags().String("convention", "", "distance convention: standard or nyanten (overrides config)")
	verifyCmd.Flags().String("outputDir", "", "directory to read tables from (overrides config)")
	verifyCmd.Flags().String("convention", "", "distance convention whose table files to verify: standard or nyanten (overrides config)")

	rootCmd.AddCommand(generateCmd, verifyCmd)
}

func newLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	convention, err := cfg.DistanceConvention()
	if err != nil {
		return err
	}
	if cfg.Workers > 0 {
		runtime.GOMAXPROCS(cfg.Workers)
	}

	numbered, honors, manifest, err := tablegen.BuildAll(context.Background(), convention, logger)
	if err != nil {
		return fmt.Errorf("tablegen: generate: %w", err)
	}

	numberedFileName, honorFileName, manifestFileName := tableFileNames(convention)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("tablegen: generate: %w", err)
	}
	if err := writeTableFile(filepath.Join(cfg.OutputDir, numberedFileName), numbered); err != nil {
		return err
	}
	if err := writeTableFile(filepath.Join(cfg.OutputDir, honorFileName), honors); err != nil {
		return err
	}

	manifestBytes, err := gojson.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("tablegen: generate: marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, manifestFileName), manifestBytes, 0o644); err != nil {
		return fmt.Errorf("tablegen: generate: write manifest: %w", err)
	}

	logger.Info("tables written", "dir", cfg.OutputDir, "run_id", manifest.RunID)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	convention, err := cfg.DistanceConvention()
	if err != nil {
		return err
	}
	numberedFileName, honorFileName, _ := tableFileNames(convention)

	numbered, err := readTableFile(filepath.Join(cfg.OutputDir, numberedFileName))
	if err != nil {
		return err
	}
	honors, err := readTableFile(filepath.Join(cfg.OutputDir, honorFileName))
	if err != nil {
		return err
	}

	report := tablecheck.Verify(numbered, honors, logger)
	if !report.Ok() {
		for _, f := range report.Failures {
			logger.Error("check failed", "detail", f)
		}
		return fmt.Errorf("tablegen: verify: %d checks failed", len(report.Failures))
	}

	logger.Info("all checks passed",
		"round_trip", report.RoundTripChecked,
		"entries", report.EntriesChecked,
		"hands", report.HandsChecked,
	)
	return nil
}

func writeTableFile(path string, records []tablefmt.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tablegen: write %s: %w", path, err)
	}
	defer f.Close()
	if err := tablefmt.WriteTable(f, records); err != nil {
		return fmt.Errorf("tablegen: write %s: %w", path, err)
	}
	return nil
}

func readTableFile(path string) ([]tablefmt.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tablegen: read %s: %w", path, err)
	}
	defer f.Close()
	records, err := tablefmt.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("tablegen: read %s: %w", path, err)
	}
	return records, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
