// Package debug provides frame capture for inspecting the rendered scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capturer writes framebuffer contents to timestamped PNG files.
type Capturer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewCapturer creates a capturer writing into dir. An empty dir means the
// working directory.
func NewCapturer(dir, prefix string) *Capturer {
	return &Capturer{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture will be written to.
func (c *Capturer) Filename() string {
	name := fmt.Sprintf("%s_%s.png", c.prefix, c.now().Format("2006-01-02_15-04-05.000"))
	return filepath.Join(c.dir, name)
}

// SaveRGBA writes bottom-up RGBA pixels, as returned by glReadPixels, to a PNG
// and returns its path.
func (c *Capturer) SaveRGBA(pixels []byte, width, height int) (string, error) {
	img, err := imageFromGL(pixels, width, height)
	if err != nil {
		return "", err
	}

	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := c.Filename()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}

// imageFromGL copies pixels into an image, flipping rows since GL's origin
// is bottom-left.
func imageFromGL(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
