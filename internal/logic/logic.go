// Package logic implements the traversal and orchestration loop.
package logic

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/lockwalk/internal/config"
	"github.com/idelchi/lockwalk/internal/encryption"
	"github.com/idelchi/lockwalk/internal/fileutil"
	"github.com/idelchi/lockwalk/internal/policy"
	"github.com/idelchi/lockwalk/internal/runlog"
	"github.com/idelchi/lockwalk/pkg/extset"
)

// Run executes one full encryption run: validate roots, walk the source tree
// in discovery order, encrypt eligible files, and flush the run log.
// Only startup failures return an error; per-file failures are recorded in
// the log and never abort the run.
func Run(cfg *config.Config) error {
	start := time.Now()

	if err := validateRoots(cfg); err != nil {
		return err
	}

	proc, err := encryption.NewProcessor(cfg.Password, cfg.Iterations, cfg.Checksum)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	rules := policy.Rules{
		Include: extset.New(cfg.Include...),
		Exclude: extset.New(cfg.Exclude...),
		MaxSize: cfg.MaxBytes(),
	}

	log := runlog.New(start)

	totalSize := traverse(cfg, rules, proc, log)

	finish(cfg, log, totalSize, start)

	return nil
}

// validateRoots performs the fatal startup checks: the source must be an
// existing directory and the output root must be creatable. Dry runs never
// touch the output root.
func validateRoots(cfg *config.Config) error {
	info, err := os.Stat(cfg.Source)
	if err != nil {
		return fmt.Errorf("source %q: %w", cfg.Source, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("source %q is not a directory", cfg.Source)
	}

	if cfg.Dry {
		return nil
	}

	if err := fileutil.EnsureDir(cfg.Output); err != nil {
		return fmt.Errorf("output root: %w", err)
	}

	return nil
}

// traverse walks the source tree sequentially, fully processing one file
// before discovering the next, so discovery order equals processing order
// equals log order. Returns the total bytes written.
func traverse(cfg *config.Config, rules policy.Rules, proc *encryption.Processor, log *runlog.Log) int64 {
	var totalSize int64

	// The callback never returns an error: unreadable entries become
	// ENUMERR records and the walk continues.
	_ = filepath.WalkDir(cfg.Source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			record := runlog.Record{Disposition: runlog.EnumError, Path: path, Detail: err.Error()}
			log.Append(record)
			report(cfg, record)

			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			record := runlog.Record{Disposition: runlog.EnumError, Path: path, Detail: err.Error()}
			log.Append(record)
			report(cfg, record)

			return nil
		}

		record, size := processCandidate(cfg, rules, proc, policy.NewCandidate(path, info.Size()))
		log.Append(record)
		report(cfg, record)

		totalSize += size

		return nil
	})

	return totalSize
}

// processCandidate runs one file through the per-file state machine:
// Classified → Skipped | DryRun | Encrypting → Succeeded | Failed.
// Failures never escape; they become ERROR records and the loop continues.
func processCandidate(
	cfg *config.Config,
	rules policy.Rules,
	proc *encryption.Processor,
	candidate policy.Candidate,
) (runlog.Record, int64) {
	eligible, reason := policy.Classify(candidate, rules)
	if !eligible {
		return runlog.Record{Disposition: runlog.Skip, Path: candidate.Path, Detail: reason}, 0
	}

	output := fileutil.MirrorPath(candidate.Path, cfg.Source, cfg.Output, cfg.Suffix)

	if cfg.Dry {
		return runlog.Record{Disposition: runlog.DryRun, Path: candidate.Path, Detail: reason, Output: output}, 0
	}

	result := proc.EncryptFile(candidate.Path, output)
	if result.Error != nil {
		return runlog.Record{Disposition: runlog.Error, Path: candidate.Path, Detail: result.Error.Error()}, 0
	}

	detail := reason
	if result.Checksum != "" {
		detail += " blake3=" + result.Checksum
	}

	return runlog.Record{
		Disposition: runlog.OK,
		Path:        candidate.Path,
		Detail:      detail,
		Output:      output,
	}, result.OutputSize
}

// report prints per-file progress to the operator. The run log remains the
// authoritative manifest; this output is informational only.
func report(cfg *config.Config, record runlog.Record) {
	switch record.Disposition {
	case runlog.OK:
		if !cfg.Quiet {
			fmt.Printf("Processed %q -> %q\n", record.Path, record.Output) //nolint:forbidigo
		}
	case runlog.DryRun:
		if !cfg.Quiet {
			fmt.Println(record.Line()) //nolint:forbidigo
		}
	case runlog.Error, runlog.EnumError:
		fmt.Fprintf(os.Stderr, "Error processing %q: %s\n", record.Path, record.Detail)
	case runlog.Skip:
		// Skips are visible in the run log only.
	}
}

// finish flushes the run log (best-effort) and prints the stats block.
// Dry runs write nothing to disk, so the log stays in memory.
func finish(cfg *config.Config, log *runlog.Log, totalSize int64, start time.Time) {
	if !cfg.Dry {
		path, err := log.Flush(cfg.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if !cfg.Quiet {
			fmt.Printf("Run log written to %q\n", path) //nolint:forbidigo
		}
	}

	if cfg.Stats {
		printStats(log, totalSize, time.Since(start))
	}
}

func printStats(log *runlog.Log, totalSize int64, duration time.Duration) {
	color.New(color.Bold).Fprintln(os.Stderr, "\nStats") //nolint:errcheck,gosec

	fmt.Fprintf(os.Stderr, "  Discovered: %d\n", len(log.Records()))
	fmt.Fprintf(os.Stderr, "  Encrypted:  %d\n", log.Count(runlog.OK))
	fmt.Fprintf(os.Stderr, "  Skipped:    %d\n", log.Count(runlog.Skip))
	fmt.Fprintf(os.Stderr, "  Dry-run:    %d\n", log.Count(runlog.DryRun))
	fmt.Fprintf(os.Stderr, "  Errors:     %d\n", log.Count(runlog.Error)+log.Count(runlog.EnumError))
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:       %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:   %s\n", duration.Round(time.Millisecond))
}
