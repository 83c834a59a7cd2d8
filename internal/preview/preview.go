// Package preview inspects locally-stored listing images for the info
// popup: format, pixel dimensions and a human-readable size.
package preview

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Preview describes a local image file.
type Preview struct {
	Path   string
	Format string
	Width  int
	Height int
	Size   int64
}

// Load reads the image header at path. Only the header is decoded; large
// files stay cheap.
func Load(path string) (*Preview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}

	return &Preview{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   st.Size(),
	}, nil
}

// Describe renders the preview for the info popup.
func (p *Preview) Describe() string {
	return fmt.Sprintf("%s\n\nFormat: %s\nDimensions: %d × %d px\nSize: %s",
		filepath.Base(p.Path), p.Format, p.Width, p.Height, FileSize(p.Size))
}

// FileSize renders a byte count the way the admin panel shows upload sizes.
func FileSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
