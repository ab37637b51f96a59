package util

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// WithFile hands write a temporary file next to filename and renames it into
// place once written and closed. On any error the temporary file is removed and
// an existing filename is left untouched.
func WithFile(filename string, write func(f *os.File) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("couldn't create file %v: %w", filename, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("write failed for file %v: %w", filename, err)
	}
	if err = f.Chmod(0644); err != nil {
		f.Close()
		return fmt.Errorf("couldn't chmod file %v: %w", filename, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("couldn't close file %v: %w", filename, err)
	}
	if err = os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("couldn't move file into place %v: %w", filename, err)
	}
	return nil
}
