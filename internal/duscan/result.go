package duscan

import "time"

// FileRecord describes a single file discovered during the walk.
//
// A stat failure (broken symlink, race with deletion, permission error)
// produces a sentinel record with Size 0 and no path or modified time.
// Sentinels still count towards FileCount but never displace real
// entries from the top list.
type FileRecord struct {
	// Path is the file path as walked from the target.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Modified is the file modification time.
	Modified time.Time `json:"modified"`
}

// DirSize is the accumulated size of the files directly contained in a
// directory. Descendant directories do not contribute; each directory
// accounts only for its immediate files.
type DirSize struct {
	// Path is the directory path as walked from the target.
	Path string `json:"path"`
	// Size is the cumulative size of immediate files in bytes.
	Size int64 `json:"size"`
}

// Partition is a one-shot snapshot of block and inode usage for the
// filesystem backing the target path.
type Partition struct {
	// TotalBytes is the partition capacity.
	TotalBytes uint64 `json:"total_bytes"`
	// UsedBytes counts blocks unavailable to a non-privileged caller,
	// so reserved blocks show up as used.
	UsedBytes uint64 `json:"used_bytes"`
	// FreeBytes counts blocks available to a non-privileged caller.
	FreeBytes uint64 `json:"free_bytes"`
	// TotalInodes is the inode capacity.
	TotalInodes uint64 `json:"total_inodes"`
	// UsedInodes is the number of allocated inodes.
	UsedInodes uint64 `json:"used_inodes"`
	// FreeInodes is the number of inodes available to a non-privileged caller.
	FreeInodes uint64 `json:"free_inodes"`
}

// Result holds the sealed outcome of a scan.
type Result struct {
	// Target is the scanned path.
	Target string `json:"target"`
	// Partition holds block and inode usage for the backing filesystem.
	Partition Partition `json:"partition"`
	// FileCount is the number of file entries encountered, stat
	// failures included.
	FileCount int64 `json:"file_count"`
	// DirCount is the number of distinct directories that directly
	// contained at least one file entry.
	DirCount int64 `json:"dir_count"`
	// TopFiles lists the largest files, size descending.
	TopFiles []FileRecord `json:"top_files"`
	// TopDirs lists the largest directories, size descending.
	TopDirs []DirSize `json:"top_dirs"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Target is the filesystem location to scan.
	Target string
	// TopFiles is the number of largest files to track (0 = default 20).
	TopFiles int
	// TopDirs is the number of largest directories to report (0 = default 10).
	TopDirs int
	// MinSize is the minimum file size in bytes for top-file candidates.
	MinSize int64
	// ExcludeRoot contains directory names skipped directly under the
	// filesystem root, in addition to the built-in pseudo-filesystem set.
	ExcludeRoot []string
	// Exclude contains directory names skipped anywhere in the tree.
	Exclude []string
	// ProgressEvery is the file-count interval between progress
	// callbacks (0 = default 5000).
	ProgressEvery int64
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Config is the path to an optional exclusion config file.
	Config string
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// Default bounds for the tracked result sets.
const (
	DefaultTopFiles      = 20
	DefaultTopDirs       = 10
	DefaultProgressEvery = 5000
)
