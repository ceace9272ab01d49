package optimize

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, level png.CompressionLevel) int {
	t.Helper()
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	require.NoError(t, enc.Encode(&buf, sampleImage()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return buf.Len()
}

func writeJPG(t *testing.T, path string) int {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, sampleImage(), &jpeg.Options{Quality: 100}))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return buf.Len()
}

func size(t *testing.T, path string) int {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return int(info.Size())
}

func TestOptimizeFile_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	before := writePNG(t, path, png.NoCompression)

	o := New(Config{PNGLevel: 6}, zap.NewNop())
	require.NoError(t, o.OptimizeFile(path, "png"))

	assert.Less(t, size(t, path), before)

	// Still a valid image with the same bounds
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, sampleImage().Bounds(), img.Bounds())
}

func TestOptimizeFile_PNGNeverGrows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	before := writePNG(t, path, png.BestCompression)

	o := New(Config{PNGLevel: 1}, zap.NewNop())
	require.NoError(t, o.OptimizeFile(path, "png"))
	assert.LessOrEqual(t, size(t, path), before)
}

func TestOptimizeFile_JPG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	before := writeJPG(t, path)

	o := New(Config{JPGQuality: 40}, zap.NewNop())
	require.NoError(t, o.OptimizeFile(path, "jpeg"))
	assert.Less(t, size(t, path), before)
}

func TestOptimizeFile_Disabled(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "a.png")
	jpgPath := filepath.Join(dir, "a.jpg")
	pngBefore := writePNG(t, pngPath, png.NoCompression)
	jpgBefore := writeJPG(t, jpgPath)

	o := New(Config{}, zap.NewNop())
	require.NoError(t, o.OptimizeFile(pngPath, "png"))
	require.NoError(t, o.OptimizeFile(jpgPath, "jpg"))

	assert.Equal(t, pngBefore, size(t, pngPath))
	assert.Equal(t, jpgBefore, size(t, jpgPath))
}

func TestOptimizeFile_OtherFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.svg")
	require.NoError(t, os.WriteFile(path, []byte("<svg/>"), 0o644))

	o := New(Config{PNGLevel: 6, JPGQuality: 50}, zap.NewNop())
	require.NoError(t, o.OptimizeFile(path, "svg"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestOptimizeFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	o := New(Config{PNGLevel: 3}, zap.NewNop())
	assert.Error(t, o.OptimizeFile(path, "png"))
}

func TestOptimizer_Mutator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	before := writePNG(t, path, png.NoCompression)

	o := New(Config{PNGLevel: 6}, zap.NewNop())
	require.NoError(t, o.Optimize(context.Background(), path))
	assert.Less(t, size(t, path), before)

	require.NoError(t, o.Remove(context.Background(), path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, o.Remove(context.Background(), path))
}

func TestSupports(t *testing.T) {
	o := New(Config{PNGLevel: 2}, nil)
	assert.True(t, o.Supports("png"))
	assert.True(t, o.Supports(".PNG"))
	assert.False(t, o.Supports("jpg"))
	assert.False(t, o.Supports("svg"))
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{JPGQuality: 80}.Enabled())
}
