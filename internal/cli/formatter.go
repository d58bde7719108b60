package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/duscan/internal/duscan"
)

const (
	// SizeColumn is the width of the size column.
	SizeColumn = 10
	// ModifiedColumn is the width of the modified-time column.
	ModifiedColumn = 20
	// timeLayout renders modification times as local calendar date-time.
	timeLayout = "2006-01-02 15:04:05"
)

// percent computes the share of part in total, as a percentage.
// Rendered with two decimal places by the callers.
func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}

	return 100.0 * float64(part) / float64(total)
}

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *duscan.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintReport writes the scan report in its fixed order: partition
// space, inode usage, the largest directories, then the largest files.
func PrintReport(result *duscan.Result, writer io.Writer) error {
	part := result.Partition

	fmt.Fprintf(writer, "%.2f%% available disk space on %s\n",
		percent(part.FreeBytes, part.TotalBytes), result.Target)
	fmt.Fprintf(writer, "Total: %s\tUsed: %s\tFree: %s\n\n",
		humanize.IBytes(part.TotalBytes),
		humanize.IBytes(part.UsedBytes),
		humanize.IBytes(part.FreeBytes))

	fmt.Fprintf(writer, "%.2f%% of Total Inodes are free.\n",
		percent(part.FreeInodes, part.TotalInodes))
	fmt.Fprintf(writer, "Total Inodes: %d\tUsed: %d\tFree: %d\n\n",
		part.TotalInodes, part.UsedInodes, part.FreeInodes)

	fmt.Fprintf(writer, "Total directory count of %d\n", result.DirCount)
	fmt.Fprintf(writer, "The %d largest directories are:\n\n", len(result.TopDirs))

	for _, dir := range result.TopDirs {
		fmt.Fprintf(writer, "%-*s%s\n", SizeColumn, humanize.IBytes(uint64(dir.Size)), dir.Path) //nolint:gosec // Sizes are non-negative
	}

	fmt.Fprintf(writer, "\nTotal file count of %d\n", result.FileCount)
	fmt.Fprintf(writer, "The %d largest files are:\n\n", len(result.TopFiles))
	fmt.Fprintf(writer, "%-*s%-*sFile\n", SizeColumn, "Size", ModifiedColumn, "Modified")

	for _, file := range result.TopFiles {
		fmt.Fprintf(writer, "%-*s%-*s%s\n",
			SizeColumn, humanize.IBytes(uint64(file.Size)), //nolint:gosec // Sizes are non-negative
			ModifiedColumn, file.Modified.Local().Format(timeLayout),
			file.Path)
	}

	return nil
}
