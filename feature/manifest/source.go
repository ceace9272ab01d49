package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"figma-asset-downloader/core/reconcile"
	"figma-asset-downloader/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the manifest read when none is given.
const DefaultPath = "fad-manifest.toml"

// Read parses the TOML manifest at path, applies defaults and validates it.
func Read(path string) (*reconcile.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, reconcile.NewIOError(err)
	}
	return Parse(data)
}

// Parse decodes a TOML manifest document, applies defaults and validates it.
func Parse(data []byte) (*reconcile.Manifest, error) {
	var m reconcile.Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, reconcile.NewParseError(err)
	}

	m = m.WithDefaults()
	if err := reconcile.Validate(m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FileSource checks a manifest against a local directory.
type FileSource struct {
	// ManifestPath is the TOML manifest location.
	ManifestPath string
	// WorkDir resolves relative asset paths. Empty means the process working directory.
	WorkDir string
	// Extensions and Scales replace the manifest's values when set.
	Extensions []string
	Scales     []int
}

// NewFileSource creates a source for the manifest at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{ManifestPath: path}
}

// Name identifies the source in cached listings.
func (s *FileSource) Name() string {
	return "fs"
}

// ReadManifest reads and parses the manifest file.
func (s *FileSource) ReadManifest(_ context.Context) (*reconcile.Manifest, error) {
	m, err := Read(s.ManifestPath)
	if err != nil {
		return nil, err
	}
	if len(s.Extensions) > 0 {
		m.FileExtensions = s.Extensions
	}
	if len(s.Scales) > 0 {
		m.FileScales = s.Scales
	}
	if err := reconcile.Validate(*m); err != nil {
		return nil, err
	}
	return m, nil
}

// ResolveRoot returns the absolute assets directory of the manifest.
func (s *FileSource) ResolveRoot(m reconcile.Manifest) (string, error) {
	if filepath.IsAbs(m.Path) {
		return filepath.Clean(m.Path), nil
	}

	dir := s.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", reconcile.NewIOError(err)
		}
		dir = wd
	}
	return filepath.Join(dir, m.Path), nil
}

// ListFiles enumerates the assets directory.
func (s *FileSource) ListFiles(ctx context.Context, root string) ([]string, error) {
	files, err := ListFiles(ctx, root)
	if err != nil {
		return nil, reconcile.NewIOError(fmt.Errorf("errors reading the assets directory: %w", err))
	}
	return files, nil
}

// BucketSource checks a local manifest against the objects published to a bucket.
// The manifest path becomes the object prefix.
type BucketSource struct {
	ManifestPath string
	Client       storage.Client
	Bucket       string
	// Prefix is prepended to the manifest path (e.g., the storage publish prefix).
	Prefix string
}

// NewBucketSource creates a bucket-backed source.
func NewBucketSource(path string, client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{
		ManifestPath: path,
		Client:       client,
		Bucket:       bucket,
		Prefix:       prefix,
	}
}

// Name identifies the source in cached listings.
func (s *BucketSource) Name() string {
	return "bucket:" + s.Bucket
}

// ReadManifest reads and parses the manifest file.
func (s *BucketSource) ReadManifest(_ context.Context) (*reconcile.Manifest, error) {
	return Read(s.ManifestPath)
}

// ResolveRoot returns the object prefix holding the manifest's assets.
func (s *BucketSource) ResolveRoot(m reconcile.Manifest) (string, error) {
	p := strings.Trim(filepath.ToSlash(m.Path), "/")
	if p == "." {
		p = ""
	}
	return strings.Trim(storage.ObjectKey(s.Prefix, p), "/"), nil
}

// ListFiles returns every object key under root, relative to it.
func (s *BucketSource) ListFiles(ctx context.Context, root string) ([]string, error) {
	prefix := ""
	if root != "" {
		prefix = root + "/"
	}

	files := []string{}
	for obj := range s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, reconcile.NewIOError(fmt.Errorf("failed to list objects in %s: %w", s.Bucket, obj.Err))
		}

		rel := strings.TrimPrefix(obj.Key, prefix)
		// Folder markers
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}
		files = append(files, rel)
	}

	return files, nil
}
