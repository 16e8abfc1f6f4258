package viewer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// SavePNG writes img to path. A failed close is reported like a failed encode.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return encodePNG(f, path, img)
}

func encodePNG(w io.WriteCloser, path string, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		w.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
