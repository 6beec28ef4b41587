package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"treediff/internal/compare"
	"treediff/internal/config"
	"treediff/internal/logging"
	"treediff/internal/report"
	"treediff/internal/snapshot"
)

// configPath is fixed; the tool takes no flags beyond built-in help.
const configPath = "treediff.yaml"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "treediff <old_file> <new_file>",
		Short: "Compare two directory tree snapshots",
		Long: `treediff compares two textual snapshots of a directory tree and reports
additions, removals, and size changes between the older and newer capture.

Each snapshot file starts with two header lines (always skipped) followed
by one line per node: a 12-character size column such as "[   1.0 KB]"
and a tree-drawing column whose indentation encodes the node's depth.

The report is written to diff_<old_stem>_vs_<new_stem>.txt.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
}

func run(oldFile, newFile string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	oldSnap, err := snapshot.Load(oldFile)
	if err != nil {
		return err
	}
	newSnap, err := snapshot.Load(newFile)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("old_entries", len(oldSnap)).
		Str("old_fingerprint", oldSnap.Fingerprint()).
		Int("new_entries", len(newSnap)).
		Str("new_fingerprint", newSnap.Fingerprint()).
		Msg("snapshots loaded")

	result := compare.Compare(oldSnap, newSnap)

	logger.Info().
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Int("changed", len(result.Changed)).
		Msg("comparison finished")

	outputPath := filepath.Join(cfg.OutputDir, report.OutputName(oldFile, newFile))
	if err := report.Write(outputPath, oldFile, newFile, result); err != nil {
		return err
	}

	fmt.Println("✨ Comparison complete!")
	fmt.Printf("📄 Report: %s\n", outputPath)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
