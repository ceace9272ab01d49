package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"figma-asset-downloader/core/reconcile"
	"figma-asset-downloader/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse([]byte(`files = ["a", "b.svg"]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b.svg"}, m.Files)
	assert.Equal(t, []string{"png"}, m.FileExtensions)
	assert.Equal(t, []int{1}, m.FileScales)
	assert.Equal(t, "downloads", m.Path)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`files = ["a"`))
	require.Error(t, err)
	assert.True(t, reconcile.IsParse(err))
	assert.Contains(t, err.Error(), "Error trying to parse the manifest:")
}

func TestParse_WrongType(t *testing.T) {
	_, err := Parse([]byte(`file_scales = "two"`))
	require.Error(t, err)
	assert.True(t, reconcile.IsParse(err))
}

func TestParse_InvalidScale(t *testing.T) {
	_, err := Parse([]byte("files = [\"a\"]\nfile_scales = [0]"))
	require.Error(t, err)
	assert.True(t, reconcile.IsParse(err))
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, reconcile.IsIO(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "Error trying to read a file/directory:")
}

func TestFileSource_Check(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
files = ["logo", "icon.svg"]
file_scales = [1, 2]
path = "assets"
`)
	writeTree(t, filepath.Join(dir, "assets"), "logo.png", "icon.svg", "2.0x/logo.png", "extra.png")

	source := &FileSource{ManifestPath: path, WorkDir: dir}
	result, err := reconcile.NewChecker(source).Check(context.Background())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "assets"), result.AssetsDir)
	assert.Equal(t, []string{"2.0x/icon.svg"}, result.Report.Missing)
	assert.Equal(t, []string{"extra.png"}, result.Report.New)
}

func TestFileSource_MissingAssetsDir(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `files = ["logo"]`)

	source := &FileSource{ManifestPath: path, WorkDir: dir}
	_, err := reconcile.NewChecker(source).Check(context.Background())
	require.Error(t, err)
	assert.True(t, reconcile.IsIO(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_ResolveRoot(t *testing.T) {
	source := &FileSource{WorkDir: "/work"}

	root, err := source.ResolveRoot(reconcile.Manifest{Path: "downloads"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "downloads"), root)

	abs := filepath.Join(t.TempDir(), "abs")
	root, err = source.ResolveRoot(reconcile.Manifest{Path: abs})
	require.NoError(t, err)
	assert.Equal(t, abs, root)
}

func TestBucketSource_Check(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
files = ["logo", "icon"]
file_scales = [1, 2]
path = "downloads"
`)

	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", minio.ListObjectsOptions{
		Prefix:    "figma/downloads/",
		Recursive: true,
	}).Return(mocks.Objects(mocks.Keys(
		"figma/downloads/logo.png",
		"figma/downloads/icon.png",
		"figma/downloads/2.0x/",
		"figma/downloads/2.0x/logo.png",
		"figma/downloads/old.png",
	)...))

	source := NewBucketSource(path, client, "assets", "figma")
	result, err := reconcile.NewChecker(source).Check(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "figma/downloads", result.AssetsDir)
	assert.Equal(t, []string{"2.0x/icon.png"}, result.Report.Missing)
	assert.Equal(t, []string{"old.png"}, result.Report.New)
	client.AssertExpectations(t)
}

func TestBucketSource_ListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "assets", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("access denied")}))

	source := NewBucketSource("", client, "assets", "")
	_, err := source.ListFiles(context.Background(), "downloads")
	require.Error(t, err)
	assert.True(t, reconcile.IsIO(err))
	assert.Contains(t, err.Error(), "access denied")
}

func TestBucketSource_ResolveRoot(t *testing.T) {
	source := NewBucketSource("", nil, "assets", "")

	root, err := source.ResolveRoot(reconcile.Manifest{Path: "./"})
	require.NoError(t, err)
	assert.Equal(t, "", root)

	root, err = source.ResolveRoot(reconcile.Manifest{Path: "/downloads/"})
	require.NoError(t, err)
	assert.Equal(t, "downloads", root)
}
