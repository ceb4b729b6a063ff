package imagefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	data := []byte{0x89, 'P', 'N', 'G'}

	written, err := Save(path, data)
	require.NoError(t, err)
	require.Equal(t, path, written)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c", "out.png")

	written, err := Save(path, []byte("img"))
	require.NoError(t, err)
	require.Equal(t, path, written)
	require.FileExists(t, path)
}

func TestSaveRelativePathWithoutDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	written, err := Save("out.png", []byte("img"))
	require.NoError(t, err)
	require.Equal(t, "out.png", written)
	require.FileExists(t, "out.png")
}
