package runlog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/lockwalk/internal/runlog"
)

func TestRecord_Line(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record runlog.Record
		want   string
	}{
		{
			name: "ok with output",
			record: runlog.Record{
				Disposition: runlog.OK,
				Path:        "/src/notes.txt",
				Detail:      "include-all",
				Output:      "/out/notes.txt.lock",
			},
			want: "OK [include-all] /src/notes.txt -> /out/notes.txt.lock",
		},
		{
			name: "skip with reason",
			record: runlog.Record{
				Disposition: runlog.Skip,
				Path:        "/src/empty.csv",
				Detail:      "zero-length",
			},
			want: "SKIP [zero-length] /src/empty.csv",
		},
		{
			name: "error with message",
			record: runlog.Record{
				Disposition: runlog.Error,
				Path:        "/src/locked.txt",
				Detail:      "opening input file: permission denied",
			},
			want: "ERROR [opening input file: permission denied] /src/locked.txt",
		},
		{
			name: "dry run",
			record: runlog.Record{
				Disposition: runlog.DryRun,
				Path:        "/src/a.txt",
				Detail:      "include-all",
				Output:      "/out/a.txt.lock",
			},
			want: "DRYRUN [include-all] /src/a.txt -> /out/a.txt.lock",
		},
		{
			name: "no detail",
			record: runlog.Record{
				Disposition: runlog.EnumError,
				Path:        "/src/ghost",
			},
			want: "ENUMERR /src/ghost",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.record.Line())
		})
	}
}

func TestLog_AppendOrderAndCount(t *testing.T) {
	t.Parallel()

	log := runlog.New(time.Now())

	log.Append(runlog.Record{Disposition: runlog.OK, Path: "a"})
	log.Append(runlog.Record{Disposition: runlog.Skip, Path: "b"})
	log.Append(runlog.Record{Disposition: runlog.OK, Path: "c"})
	log.Append(runlog.Record{Disposition: runlog.Error, Path: "d"})

	records := log.Records()
	require.Len(t, records, 4)

	paths := make([]string, 0, len(records))
	for _, r := range records {
		paths = append(paths, r.Path)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, paths, "discovery order is preserved")
	assert.Equal(t, 2, log.Count(runlog.OK))
	assert.Equal(t, 1, log.Count(runlog.Skip))
	assert.Equal(t, 1, log.Count(runlog.Error))
	assert.Equal(t, 0, log.Count(runlog.DryRun))
}

func TestLog_Flush(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 11, 5, 13, 37, 42, 0, time.UTC)
	log := runlog.New(start)

	log.Append(runlog.Record{Disposition: runlog.OK, Path: "a.txt", Detail: "include-all", Output: "a.txt.lock"})
	log.Append(runlog.Record{Disposition: runlog.Skip, Path: "b.exe", Detail: "excluded-ext"})

	dir := t.TempDir()

	path, err := log.Flush(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lockwalk-20241105-133742.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OK [include-all] a.txt -> a.txt.lock", lines[0])
	assert.Equal(t, "SKIP [excluded-ext] b.exe", lines[1])
}

func TestLog_FlushFailureKeepsRecords(t *testing.T) {
	t.Parallel()

	log := runlog.New(time.Now())
	log.Append(runlog.Record{Disposition: runlog.OK, Path: "a"})

	_, err := log.Flush(filepath.Join(t.TempDir(), "no-such-dir"))
	require.Error(t, err)

	assert.Len(t, log.Records(), 1, "in-memory records survive a failed flush")
}
