// Package filesink implements persistence's simplest conformant ByteSink:
// a single flat file written and read with os.WriteFile/os.ReadFile,
// grounded on original_source's serialize_to_file/deserialize_from_file.
package filesink

import (
	"errors"
	"os"
)

// Sink stores a snapshot blob at a single file path.
type Sink struct {
	path string
	perm os.FileMode
}

// New constructs a file-backed sink at path. perm defaults to 0o600 if 0.
func New(path string, perm os.FileMode) *Sink {
	if perm == 0 {
		perm = 0o600
	}
	return &Sink{path: path, perm: perm}
}

// Write atomically replaces the file's contents with data.
func (s *Sink) Write(data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, s.perm); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Read returns the file's current contents.
func (s *Sink) Read() ([]byte, error) {
	return os.ReadFile(s.path)
}

// Exists reports whether a snapshot file is present at path.
func (s *Sink) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
