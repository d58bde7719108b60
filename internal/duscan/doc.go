// Package duscan gathers disk usage information from a target location
// and down.
//
// It probes the partition backing the target for block and inode
// statistics, walks the directory tree using fastwalk, and tracks the
// largest files and directories seen during the walk without holding
// the full entry set in memory.
package duscan
