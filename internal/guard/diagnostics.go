// ABOUTME: Diagnostic snapshot of the storage environment for the doctor command.
// ABOUTME: Collects capability flags, schema state, disk usage, and row counts.
package guard

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

const (
	diskProbeTimeout  = 3 * time.Second
	countProbeTimeout = 2 * time.Second
)

// TableCount reports the row count for one table, or the error that
// prevented counting it. Each count is bounded by its own timeout so a
// single wedged table cannot stall the whole report.
type TableCount struct {
	Table string `json:"table"`
	Count int64  `json:"count"`
	Err   string `json:"error,omitempty"`
}

// Diagnostics is everything the doctor command reports about the store.
type Diagnostics struct {
	DataDirWritable bool         `json:"data_dir_writable"`
	Available       bool         `json:"available"`
	LastError       string       `json:"last_error,omitempty"`
	LastFailureKind string       `json:"last_failure_kind"`
	DBPath          string       `json:"db_path"`
	DBSizeBytes     int64        `json:"db_size_bytes"`
	SchemaVersion   int          `json:"schema_version"`
	DiskTotalBytes  uint64       `json:"disk_total_bytes"`
	DiskFreeBytes   uint64       `json:"disk_free_bytes"`
	DiskUsedPercent float64      `json:"disk_used_percent"`
	DiskError       string       `json:"disk_error,omitempty"`
	Tables          []TableCount `json:"tables"`
}

// Diagnostics gathers a point-in-time report. It never fails: probes that
// error are recorded in the corresponding field and the rest proceed.
func (g *Guard) Diagnostics(ctx context.Context) Diagnostics {
	st := g.Status()

	diag := Diagnostics{
		Available:       st.Available,
		LastFailureKind: st.LastKind.String(),
	}
	if st.LastErr != nil {
		diag.LastError = st.LastErr.Error()
	}

	db := g.DB()
	if db != nil {
		diag.DBPath = db.Path()
	} else {
		diag.DBPath = storage.DefaultDBPath()
	}
	diag.DataDirWritable = dirWritable(filepath.Dir(diag.DBPath))

	if fi, err := os.Stat(diag.DBPath); err == nil {
		diag.DBSizeBytes = fi.Size()
	}

	diskCtx, cancel := context.WithTimeout(ctx, diskProbeTimeout)
	defer cancel()
	if usage, err := disk.UsageWithContext(diskCtx, filepath.Dir(diag.DBPath)); err != nil {
		diag.DiskError = err.Error()
	} else {
		diag.DiskTotalBytes = usage.Total
		diag.DiskFreeBytes = usage.Free
		diag.DiskUsedPercent = usage.UsedPercent
	}

	if db == nil {
		return diag
	}

	if v, err := db.SchemaVersion(); err == nil {
		diag.SchemaVersion = v
	}

	for _, table := range storage.Tables {
		tc := TableCount{Table: table}
		countCtx, cancel := context.WithTimeout(ctx, countProbeTimeout)
		n, err := db.CountTable(countCtx, table)
		cancel()
		if err != nil {
			tc.Err = err.Error()
		} else {
			tc.Count = n
		}
		diag.Tables = append(diag.Tables, tc)
	}

	return diag
}

// dirWritable checks that we can actually create a file in dir, which
// catches read-only mounts that os.Stat alone would miss.
func dirWritable(dir string) bool {
	if dir == "" || dir == "." {
		return false
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
