//go:build linux

package duscan

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// probePartition queries block and inode statistics for the filesystem
// backing path.
//
// The free figure uses the non-privileged available block count
// (Bavail), and used space is computed against the same count, so that
// blocks reserved for privileged use appear as used rather than free.
func probePartition(path string) (Partition, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Partition{}, fmt.Errorf("probing partition at %q: %w", path, err)
	}

	bsize := uint64(st.Frsize)

	return Partition{
		TotalBytes:  st.Blocks * bsize,
		UsedBytes:   (st.Blocks - st.Bavail) * bsize,
		FreeBytes:   st.Bavail * bsize,
		TotalInodes: st.Files,
		UsedInodes:  st.Files - st.Ffree,
		FreeInodes:  st.Ffree,
	}, nil
}

// device returns the device number of the filesystem object at path
// without following a final symlink.
func device(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, err
	}

	return uint64(st.Dev), nil
}
