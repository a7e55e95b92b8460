// Package runlog records one outcome per discovered file, in discovery order.
//
// The log is an explicit append-only value owned by the traversal loop, never
// package-global state. It is held in memory for the whole run and flushed to
// a single timestamped file at the end.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Disposition is the final classification of a file's processing outcome.
type Disposition string

const (
	// OK: an encrypted output file was created.
	OK Disposition = "OK"
	// Skip: the file was ineligible; no filesystem write.
	Skip Disposition = "SKIP"
	// Error: processing this file failed; the loop continued.
	Error Disposition = "ERROR"
	// DryRun: the file was eligible but the run was in dry-run mode.
	DryRun Disposition = "DRYRUN"
	// EnumError: a filesystem entry could not be read during discovery.
	EnumError Disposition = "ENUMERR"
)

// FilePrefix and timeLayout form the log file naming convention:
// lockwalk-20060102-150405.log under the output root.
const (
	FilePrefix = "lockwalk-"
	timeLayout = "20060102-150405"
)

// Record is a single per-file outcome. Appended exactly once per file
// encountered, never mutated afterwards.
type Record struct {
	// Disposition of the file.
	Disposition Disposition

	// Path of the source file (or unreadable entry, for EnumError).
	Path string

	// Detail holds the skip reason, error message, or OK annotations.
	Detail string

	// Output path, set for OK and DryRun records.
	Output string
}

// Line renders the record in the log file schema:
//
//	<DISPOSITION> [<detail>] <source-path>[ -> <output-path>]
func (r Record) Line() string {
	var sb strings.Builder

	sb.WriteString(string(r.Disposition))

	if r.Detail != "" {
		sb.WriteString(" [")
		sb.WriteString(r.Detail)
		sb.WriteString("]")
	}

	sb.WriteString(" ")
	sb.WriteString(r.Path)

	if r.Output != "" {
		sb.WriteString(" -> ")
		sb.WriteString(r.Output)
	}

	return sb.String()
}

// Log is the ordered, append-only record of one run's outcomes.
type Log struct {
	start   time.Time
	records []Record
}

// New creates a log stamped with the run's start time.
func New(start time.Time) *Log {
	return &Log{start: start}
}

// Append adds a record. Records are never reordered or mutated.
func (l *Log) Append(record Record) {
	l.records = append(l.records, record)
}

// Records returns the outcomes in discovery order.
func (l *Log) Records() []Record {
	return l.records
}

// Count returns how many records carry the given disposition.
func (l *Log) Count(disposition Disposition) int {
	var n int

	for _, record := range l.records {
		if record.Disposition == disposition {
			n++
		}
	}

	return n
}

// Filename returns the log file name for this run's start timestamp.
func (l *Log) Filename() string {
	return FilePrefix + l.start.Format(timeLayout) + ".log"
}

// Flush writes one line per record to dir/<Filename()>, UTF-8 encoded.
// Best-effort: the caller reports failures to the operator, but records
// already in memory stay valid either way. Returns the written path.
func (l *Log) Flush(dir string) (string, error) {
	path := filepath.Join(dir, l.Filename())

	var sb strings.Builder

	for _, record := range l.records {
		sb.WriteString(record.Line())
		sb.WriteString("\n")
	}

	const ownerReadWrite = 0o600

	if err := os.WriteFile(path, []byte(sb.String()), ownerReadWrite); err != nil {
		return "", fmt.Errorf("writing run log: %w", err)
	}

	return path, nil
}
