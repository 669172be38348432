//go:build unix

package main

import "golang.org/x/sys/unix"

// canRead reports whether the current user may read path.
func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
