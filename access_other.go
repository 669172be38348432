//go:build !unix

package main

import "os"

// canRead reports whether path can be opened for reading.
func canRead(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
