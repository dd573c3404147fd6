package display

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// SnapshotOptions controls how a frame is written to disk.
type SnapshotOptions struct {
	// Scale enlarges the image by an integer factor with nearest-neighbour
	// sampling so every rasterized pixel stays a sharp square. Values below
	// 2 keep the original size.
	Scale int
}

type encoder func(w io.Writer, img image.Image) error

var encoders = map[string]encoder{
	".png": png.Encode,
	".bmp": bmp.Encode,
	".tga": tga.Encode,
	".webp": func(w io.Writer, img image.Image) error {
		return nativewebp.Encode(w, img, nil)
	},
}

// EncodeSnapshot writes img in the format named by ext (".png", ".bmp",
// ".webp" or ".tga").
func EncodeSnapshot(w io.Writer, ext string, img image.Image, opts SnapshotOptions) error {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return fmt.Errorf("unsupported snapshot format %q", ext)
	}
	if err := enc(w, Upscale(img, opts.Scale)); err != nil {
		return fmt.Errorf("encode %s: %w", ext, err)
	}
	return nil
}

// SaveSnapshot writes img to path, picking the format from its extension.
func SaveSnapshot(path string, img image.Image, opts SnapshotOptions) error {
	ext := filepath.Ext(path)
	if _, ok := encoders[strings.ToLower(ext)]; !ok {
		return fmt.Errorf("save snapshot %s: unsupported format %q", path, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save snapshot %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodeSnapshot(w, ext, img, opts); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return f.Close()
}

// Upscale returns img enlarged by scale. A scale below 2 returns img.
func Upscale(img image.Image, scale int) image.Image {
	if scale < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
