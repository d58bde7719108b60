package duscan

import (
	"sort"
	"sync"
)

// aggregator accumulates walk results from concurrent fastwalk callbacks
// using a mutex.
//
// It keeps two independent tallies: a bounded list of the largest files,
// re-established after every insertion, and an unbounded directory map
// that is sorted and truncated exactly once when the walk ends.
type aggregator struct {
	mu        sync.Mutex // Protect concurrent access
	topFiles  int
	topDirs   int
	files     []FileRecord
	dirSizes  map[string]int64
	fileCount int64
	finalized bool
}

// newAggregator creates an aggregator with the requested bounds.
func newAggregator(topFiles, topDirs int) *aggregator {
	if topFiles <= 0 {
		topFiles = DefaultTopFiles
	}

	if topDirs <= 0 {
		topDirs = DefaultTopDirs
	}

	return &aggregator{
		topFiles: topFiles,
		topDirs:  topDirs,
		files:    make([]FileRecord, 0, topFiles+1),
		dirSizes: make(map[string]int64),
	}
}

// addFile records a file entry found in dir and returns the running
// file count.
func (a *aggregator) addFile(dir string, rec FileRecord) int64 {
	return a.add(dir, rec, true)
}

// addCandidate records a file entry, but only lets it compete for the
// top list when it meets the minimum size. Counting and directory
// accumulation are unaffected by the threshold.
func (a *aggregator) addCandidate(dir string, rec FileRecord, minSize int64) int64 {
	return a.add(dir, rec, minSize <= 0 || rec.Size >= minSize)
}

// add records a file entry. This operation is protected by a mutex
// since fastwalk calls the callback from multiple goroutines
// concurrently.
//
// The record's size is added to the containing directory's total. The
// directory is passed in rather than derived from the record, since
// sentinel records carry no path. If track is set, the record is also
// inserted into the bounded top list in sorted position. Equal sizes
// keep their relative arrival order.
func (a *aggregator) add(dir string, rec FileRecord, track bool) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		panic("duscan: aggregator used after finalize")
	}

	a.fileCount++
	a.dirSizes[dir] += rec.Size

	if track {
		idx := sort.Search(len(a.files), func(i int) bool {
			return a.files[i].Size < rec.Size
		})

		a.files = append(a.files, FileRecord{})
		copy(a.files[idx+1:], a.files[idx:])
		a.files[idx] = rec

		if len(a.files) > a.topFiles {
			a.files = a.files[:a.topFiles]
		}
	}

	return a.fileCount
}

// finalize seals the aggregator and produces the top results.
//
// The directory map is sorted descending by size, its length recorded
// as the directory count, and only the largest entries kept. The map is
// discarded afterwards; further additions are a caller bug and panic.
func (a *aggregator) finalize() (files []FileRecord, dirs []DirSize, fileCount, dirCount int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		panic("duscan: aggregator finalized twice")
	}

	a.finalized = true

	dirs = make([]DirSize, 0, len(a.dirSizes))
	for path, size := range a.dirSizes {
		dirs = append(dirs, DirSize{Path: path, Size: size})
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		return dirs[i].Size > dirs[j].Size
	})

	dirCount = int64(len(dirs))
	if len(dirs) > a.topDirs {
		dirs = dirs[:a.topDirs]
	}

	files = a.files
	fileCount = a.fileCount

	a.dirSizes = nil
	a.files = nil

	return files, dirs, fileCount, dirCount
}
