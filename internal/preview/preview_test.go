package preview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, 32, 20)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", p.Format)
	assert.Equal(t, 32, p.Width)
	assert.Equal(t, 20, p.Height)
	assert.Positive(t, p.Size)

	desc := p.Describe()
	assert.Contains(t, desc, "pic.png")
	assert.Contains(t, desc, "32 × 20 px")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/x.png")
	assert.Error(t, err)
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFileSize(t *testing.T) {
	assert.Equal(t, "1.0 KiB", FileSize(1024))
	assert.Equal(t, "0 B", FileSize(0))
	assert.Equal(t, "0 B", FileSize(-5))
}
