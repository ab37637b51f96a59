package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"G": 1, "A": 2, "D": 3, "C": 4}
	assert.Equal(t, []string{"A", "C", "D", "G"}, GetKeys(m))
	assert.Empty(t, GetKeys(map[int]bool{}))
}

func TestWithFileWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	err := WithFile(path, func(f *os.File) error {
		_, err := f.Write([]byte("abc"))
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

func TestWithFileRemovesOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	boom := errors.New("boom")
	err := WithFile(path, func(f *os.File) error {
		f.Write([]byte("partial"))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWithFileKeepsExistingFileOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "melody.mid")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	boom := errors.New("boom")
	err := WithFile(path, func(f *os.File) error {
		f.Write([]byte("partial"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("previous"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWithFileReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "melody.mid")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	require.NoError(t, WithFile(path, func(f *os.File) error {
		_, err := f.Write([]byte("next"))
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("next"), data)
}

func TestWithFileBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.bin")
	called := false
	err := WithFile(path, func(f *os.File) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
