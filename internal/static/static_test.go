package static

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Install(dir))

	assert.FileExists(t, filepath.Join(dir, "icon.png"))
	assert.FileExists(t, filepath.Join(dir, "sounds", "bell.wav"))
}

func TestInstallKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	bell := filepath.Join(dir, "sounds", "bell.wav")

	require.NoError(t, os.MkdirAll(filepath.Dir(bell), 0o755))
	require.NoError(t, os.WriteFile(bell, []byte("mine"), 0o644))

	require.NoError(t, Install(dir))

	b, err := os.ReadFile(bell)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(b))
}
