// Package optimize recompresses downloaded images.
//
// PNG files are re-encoded losslessly and kept only when smaller; JPEG files are
// re-encoded at the configured quality. The Optimizer also serves as the
// file-side mutator of manifest validation runs (optimize or purge new assets).
package optimize
