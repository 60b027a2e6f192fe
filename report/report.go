// Package report renders scan outcomes into the saved text report.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portscope/scanner"
)

// Filename returns the deterministic report path for a target.
func Filename(target string) string {
	return "scan_report_" + target + ".txt"
}

// Render produces the human-readable report body.
func Render(r *scanner.Report) []byte {
	var b bytes.Buffer
	b.WriteString("=== Port Scan Report ===\n")
	fmt.Fprintf(&b, "Target: %s\n", r.Target)
	fmt.Fprintf(&b, "Resolved IP: %s\n", r.IP)
	fmt.Fprintf(&b, "Scan Time: %s\n", r.ScannedAt.Format(time.RFC3339))
	b.WriteString("---------------------------------\n\n")
	for _, res := range r.Open {
		fmt.Fprintf(&b, "Port %d OPEN\n", res.Port)
		if res.Banner != "" {
			fmt.Fprintf(&b, "Banner: %s\n", res.Banner)
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Write renders r and writes it to path atomically, so a failed write never
// leaves a truncated report behind.
func Write(path string, r *scanner.Report) error {
	return writeAtomic(path, Render(r))
}

// writeAtomic writes data to path via a temp file in the same directory and
// a rename into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, "portscope-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp -> final: %w", err)
	}
	return nil
}
