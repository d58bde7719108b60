package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/idelchi/duscan/internal/duscan"
)

func fixture() *duscan.Result {
	modified := time.Date(2026, 2, 1, 12, 30, 0, 0, time.Local)

	return &duscan.Result{
		Target: "/data",
		Partition: duscan.Partition{
			TotalBytes:  1 << 30,
			UsedBytes:   1 << 29,
			FreeBytes:   1 << 29,
			TotalInodes: 1000,
			UsedInodes:  250,
			FreeInodes:  750,
		},
		FileCount: 3,
		DirCount:  2,
		TopFiles: []duscan.FileRecord{
			{Path: "/data/big", Size: 999999, Modified: modified},
			{Path: "/data/sub/mid", Size: 5000, Modified: modified},
			{Path: "/data/small", Size: 1, Modified: modified},
		},
		TopDirs: []duscan.DirSize{
			{Path: "/data", Size: 1000000},
			{Path: "/data/sub", Size: 5000},
		},
	}
}

func TestPrintReport_Order(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintReport(fixture(), &buf); err != nil {
		t.Fatalf("PrintReport failed: %v", err)
	}

	out := buf.String()

	wantInOrder := []string{
		"50.00% available disk space on /data",
		"Total: 1.0 GiB\tUsed: 512 MiB\tFree: 512 MiB",
		"75.00% of Total Inodes are free.",
		"Total Inodes: 1000\tUsed: 250\tFree: 750",
		"Total directory count of 2",
		"The 2 largest directories are:",
		"/data/sub",
		"Total file count of 3",
		"The 3 largest files are:",
		"2026-02-01 12:30:00",
		"/data/big",
	}

	last := -1
	for _, want := range wantInOrder {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
		if idx < last {
			t.Fatalf("expected %q after previous marker:\n%s", want, out)
		}
		last = idx
	}
}

func TestPrintReport_ZeroTotals(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintReport(&duscan.Result{Target: "/empty"}, &buf); err != nil {
		t.Fatalf("PrintReport failed: %v", err)
	}

	if !strings.Contains(buf.String(), "0.00% available disk space on /empty") {
		t.Fatalf("expected zero percentage for empty partition stats:\n%s", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintJSON(fixture(), &buf); err != nil {
		t.Fatalf("PrintJSON failed: %v", err)
	}

	var decoded duscan.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.FileCount != 3 || decoded.DirCount != 2 {
		t.Fatalf("unexpected decoded counts: %+v", decoded)
	}

	if len(decoded.TopFiles) != 3 || decoded.TopFiles[0].Path != "/data/big" {
		t.Fatalf("unexpected decoded top files: %+v", decoded.TopFiles)
	}
}

func TestPercent(t *testing.T) {
	if got := percent(1, 0); got != 0 {
		t.Fatalf("expected 0 for zero total, got %f", got)
	}

	if got := percent(1, 4); got != 25 {
		t.Fatalf("expected 25, got %f", got)
	}
}
