package duscan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// defaultRootExcludes lists directory names directly under the
// filesystem root that hold pseudo-filesystems rather than ordinary
// files and are unsafe or meaningless to traverse.
//
//nolint:gochecknoglobals // Config constant
var defaultRootExcludes = []string{"dev", "proc", "selinux"}

// shouldDescend reports whether the walk may enter the directory at
// path. Mount boundaries are never crossed, directory names in exclude
// are skipped anywhere, and names in excludeRoot are skipped when their
// parent is the filesystem root.
func shouldDescend(path string, rootDev uint64, excludeRoot, exclude map[string]struct{}) bool {
	name := filepath.Base(path)

	if _, ok := exclude[name]; ok {
		return false
	}

	if filepath.Dir(path) == string(filepath.Separator) {
		if _, ok := excludeRoot[name]; ok {
			return false
		}
	}

	dev, err := device(path)
	if err != nil {
		// Let the directory listing fail on its own; the subtree is
		// silently absent either way.
		return true
	}

	return dev == rootDev
}

// statEntry resolves a walk entry into a FileRecord.
//
// Symlinks are followed with a full stat, so a broken link surfaces as
// a stat failure and yields a zero-size sentinel record. A link that
// resolves to a directory is not a file entry at all and is reported
// with counted = false.
func statEntry(path string, entry fs.DirEntry) (rec FileRecord, counted bool) {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return FileRecord{}, true
		}

		if info.IsDir() {
			return FileRecord{}, false
		}

		return FileRecord{Path: path, Size: info.Size(), Modified: info.ModTime()}, true
	}

	info, err := entry.Info()
	if err != nil {
		return FileRecord{}, true
	}

	return FileRecord{Path: path, Size: info.Size(), Modified: info.ModTime()}, true
}

// toSet builds a name lookup set from the given name lists.
func toSet(names ...[]string) map[string]struct{} {
	set := make(map[string]struct{})

	for _, list := range names {
		for _, name := range list {
			set[name] = struct{}{}
		}
	}

	return set
}

// Run scans the tree rooted at opt.Target and returns the sealed
// result: partition usage, file and directory counts, and the largest
// files and directories found.
//
// Partition probing happens before the walk and any failure there is
// fatal. During the walk, individual stat failures degrade into
// zero-size sentinel records and unreadable subdirectories are skipped
// silently, so a best-effort report is always produced for a valid
// target.
//
// The walk can be cancelled via ctx. If progressHook is non-nil it is
// invoked with the running file count on every opt.ProgressEvery-th
// file.
func Run(ctx context.Context, opt Options, progressHook func(int64)) (*Result, error) {
	log := logger{enabled: opt.Debug}

	opt.Target = filepath.Clean(opt.Target)

	if info, err := os.Stat(opt.Target); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Target, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Target)
	}

	partition, err := probePartition(opt.Target)
	if err != nil {
		return nil, err
	}

	rootDev, err := device(opt.Target)
	if err != nil {
		return nil, fmt.Errorf("resolving device of %q: %w", opt.Target, err)
	}

	excludeRoot := toSet(defaultRootExcludes, opt.ExcludeRoot)
	exclude := toSet(opt.Exclude)

	every := opt.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	log.printf("[debug]: root-excluded names:\n")

	for name := range excludeRoot {
		log.printf("[debug]:   - %s\n", name)
	}

	agg := newAggregator(opt.TopFiles, opt.TopDirs)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks into directories
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)

			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			if path == opt.Target {
				return nil
			}

			if !shouldDescend(path, rootDev, excludeRoot, exclude) {
				log.printf("[debug]: not descending into: %s\n", path)

				return filepath.SkipDir
			}

			return nil
		}

		rec, counted := statEntry(path, d)
		if !counted {
			return nil
		}

		count := agg.addCandidate(filepath.Dir(path), rec, opt.MinSize)

		if progressHook != nil && count%every == 0 {
			progressHook(count)
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	files, dirs, fileCount, dirCount := agg.finalize()

	return &Result{
		Target:    opt.Target,
		Partition: partition,
		FileCount: fileCount,
		DirCount:  dirCount,
		TopFiles:  files,
		TopDirs:   dirs,
		Elapsed:   time.Since(start),
	}, nil
}
