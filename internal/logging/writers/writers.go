// Package writers resolves log output destinations.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

const fileScheme = "file://"

// CreateWriter opens the destination described by output:
//   - "stdout" or "" for os.Stdout
//   - "stderr" for os.Stderr
//   - "file:///path/to/file" or a plain path for an appended file, parent directories are created
//
// Closing a standard stream writer is a no-op.
func CreateWriter(output string) (io.WriteCloser, error) {
	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return nopCloser{os.Stdout}, nil
	case WriterTypeStderr:
		return nopCloser{os.Stderr}, nil
	}

	path := strings.TrimPrefix(output, fileScheme)
	if !isFilePath(output) {
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
	return createFileWriter(path)
}

// isFilePath rejects URLs with schemes other than file://
func isFilePath(path string) bool {
	if strings.HasPrefix(path, fileScheme) {
		return len(path) > len(fileScheme)
	}
	if strings.Contains(path, "://") {
		return false
	}
	return strings.ContainsAny(path, `/\`) || filepath.Ext(path) != ""
}

func createFileWriter(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	switch output {
	case "", string(WriterTypeStdout):
		return WriterTypeStdout
	case string(WriterTypeStderr):
		return WriterTypeStderr
	default:
		return WriterTypeFile
	}
}

type nopCloser struct {
	*os.File
}

func (nopCloser) Close() error { return nil }

// Unwrap returns the standard stream behind a writer, or nil for file writers
func Unwrap(w io.Writer) *os.File {
	if n, ok := w.(nopCloser); ok {
		return n.File
	}
	return nil
}
