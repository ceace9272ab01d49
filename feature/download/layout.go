package download

import (
	"fmt"
	"os"
	"path/filepath"

	"figma-asset-downloader/core/reconcile"
	"figma-asset-downloader/feature/figma"
)

// Task is an image paired with the file it is written to.
type Task struct {
	Image figma.Image
	Path  string
}

// PrepareFolders creates root and one folder per scale other than 1.
func PrepareFolders(root string, scales []int) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}
	for _, scale := range scales {
		dir := reconcile.ScaleDir(scale)
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// TargetPath returns where img is written under root.
// It follows the same scale layout the manifest check expects.
func TargetPath(root string, img figma.Image) string {
	return filepath.Join(root, filepath.FromSlash(reconcile.ScalePath(img.Scale, img.FileName())))
}

// SelectPending maps images to their target files.
// With onlyMissing, images whose file already exists are returned as skipped instead.
func SelectPending(images []figma.Image, root string, onlyMissing bool) (pending []Task, skipped []Task) {
	for _, img := range images {
		task := Task{Image: img, Path: TargetPath(root, img)}
		if onlyMissing {
			if _, err := os.Stat(task.Path); err == nil {
				skipped = append(skipped, task)
				continue
			}
		}
		pending = append(pending, task)
	}
	return pending, skipped
}
