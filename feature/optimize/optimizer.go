package optimize

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Optimizer recompresses PNG and JPEG files in place.
type Optimizer struct {
	// PNGLevel is 1 (fast) to 6 (smallest). 0 leaves PNG files untouched.
	PNGLevel int
	// JPGQuality is 1 to 100. 0 leaves JPEG files untouched.
	JPGQuality int

	logger *zap.Logger
}

// New creates an optimizer from the configuration.
func New(cfg Config, logger *zap.Logger) *Optimizer {
	return &Optimizer{
		PNGLevel:   cfg.PNGLevel,
		JPGQuality: cfg.JPGQuality,
		logger:     logger,
	}
}

// Supports reports whether files with the extension are optimized with the current settings.
func (o *Optimizer) Supports(ext string) bool {
	switch normalize(ext) {
	case "png":
		return o.PNGLevel > 0
	case "jpg":
		return o.JPGQuality > 0
	}
	return false
}

// OptimizeFile re-encodes the file at path according to ext.
// Other extensions, and formats whose setting is 0, are left untouched.
func (o *Optimizer) OptimizeFile(path, ext string) error {
	switch normalize(ext) {
	case "png":
		if o.PNGLevel <= 0 {
			return nil
		}
		return o.optimizePNG(path)
	case "jpg":
		if o.JPGQuality <= 0 {
			return nil
		}
		return o.optimizeJPG(path)
	}
	return nil
}

// Optimize recompresses the file, inferring the format from its extension (png when absent).
func (o *Optimizer) Optimize(_ context.Context, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "png"
	}
	return o.OptimizeFile(path, ext)
}

// Remove deletes the file.
func (o *Optimizer) Remove(_ context.Context, path string) error {
	if o.logger != nil {
		o.logger.Info("Removing asset", zap.String("path", path))
	}
	return os.Remove(path)
}

func (o *Optimizer) optimizePNG(path string) error {
	img, original, err := decode(path, png.Decode)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: compressionFor(o.PNGLevel)}
	if err := enc.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode png %s: %w", path, err)
	}

	// Lossless: keep whichever encoding is smaller
	if buf.Len() >= original {
		o.debug("PNG already optimal", path, original, original)
		return nil
	}
	o.debug("Optimized image", path, original, buf.Len())
	return writeFile(path, buf.Bytes())
}

func (o *Optimizer) optimizeJPG(path string) error {
	img, original, err := decode(path, jpeg.Decode)
	if err != nil {
		return err
	}

	quality := min(o.JPGQuality, 100)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("failed to encode jpeg %s: %w", path, err)
	}

	o.debug("Optimized image", path, original, buf.Len())
	return writeFile(path, buf.Bytes())
}

func (o *Optimizer) debug(msg, path string, before, after int) {
	if o.logger == nil {
		return
	}
	o.logger.Debug(msg, zap.String("path", path), zap.Int("before", before), zap.Int("after", after))
}

// compressionFor maps levels 1-6 onto the encoder presets.
func compressionFor(level int) png.CompressionLevel {
	switch {
	case level <= 2:
		return png.BestSpeed
	case level <= 4:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

func decode(path string, fn func(r io.Reader) (image.Image, error)) (image.Image, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	img, err := fn(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, len(data), nil
}

func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}
