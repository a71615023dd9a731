package lib

import (
	"os"
	"syscall"
)

// OpenInput resolves a command line argument to an open file. "-" means
// standard input, which gets an empty display name so output formatters
// can omit it.
func OpenInput(filename string) (string, *os.File, error) {
	if filename == "-" {
		return "", os.NewFile(uintptr(syscall.Stdin), "/dev/stdin"), nil
	}
	fd, err := os.Open(filename)
	return filename, fd, err
}
