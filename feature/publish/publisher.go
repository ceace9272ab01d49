package publish

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"figma-asset-downloader/core/storage"
	"figma-asset-downloader/feature/manifest"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrOptimizeUnsupported is returned when optimizing an object in place is requested.
var ErrOptimizeUnsupported = errors.New("optimizing published objects is not supported")

// Result summarizes a tree upload.
type Result struct {
	Uploaded []string `json:"uploaded"`
	Skipped  []string `json:"skipped"`
	Failed   []string `json:"failed"`
}

// Publisher uploads downloaded assets to a bucket.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewPublisher creates a publisher writing under prefix in bucket.
func NewPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Bucket returns the target bucket.
func (p *Publisher) Bucket() string {
	return p.bucket
}

// Key returns the object key of a "/"-separated path relative to the download root.
func (p *Publisher) Key(rel string) string {
	return storage.ObjectKey(p.prefix, rel)
}

// PublishTree uploads every file under root to prefix/<relative path>.
// Files whose object already holds the same content are skipped.
// A failing upload does not stop the others; failures are joined into the returned error.
func (p *Publisher) PublishTree(ctx context.Context, root string) (*Result, error) {
	files, err := manifest.ListFiles(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	if err := storage.EnsureBucket(ctx, p.client, p.bucket, ""); err != nil {
		return nil, err
	}

	result := &Result{Uploaded: []string{}, Skipped: []string{}, Failed: []string{}}
	var errs []error

	for _, rel := range files {
		uploaded, err := p.PublishFile(ctx, filepath.Join(root, filepath.FromSlash(rel)), rel)
		switch {
		case err != nil:
			result.Failed = append(result.Failed, rel)
			errs = append(errs, err)
		case uploaded:
			result.Uploaded = append(result.Uploaded, rel)
		default:
			result.Skipped = append(result.Skipped, rel)
		}
	}

	p.logger.Info("Published assets",
		zap.String("bucket", p.bucket),
		zap.Int("uploaded", len(result.Uploaded)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("failed", len(result.Failed)))

	return result, errors.Join(errs...)
}

// PublishFile uploads a single file as the object for rel.
// It reports false when the object is already up to date.
func (p *Publisher) PublishFile(ctx context.Context, file, rel string) (bool, error) {
	key := p.Key(rel)

	f, err := os.Open(file)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}

	sum, err := checksum(f)
	if err != nil {
		return false, fmt.Errorf("failed to hash %s: %w", file, err)
	}

	if obj, err := p.client.StatObject(ctx, p.bucket, key, minio.StatObjectOptions{}); err == nil {
		if obj.Size == info.Size() && strings.Trim(obj.ETag, `"`) == sum {
			return false, nil
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	_, err = p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType(rel),
	})
	if err != nil {
		return false, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Debug("Uploaded asset", zap.String("key", key))
	return true, nil
}

// Optimize is not available for objects.
func (p *Publisher) Optimize(_ context.Context, key string) error {
	return fmt.Errorf("%s: %w", key, ErrOptimizeUnsupported)
}

// Remove deletes the object stored under key.
func (p *Publisher) Remove(ctx context.Context, key string) error {
	return p.client.RemoveObject(ctx, p.bucket, filepath.ToSlash(key), minio.RemoveObjectOptions{})
}

// RemoveBatch deletes several objects concurrently. Every key is attempted.
func (p *Publisher) RemoveBatch(ctx context.Context, keys []string) error {
	errs := make([]error, len(keys))

	var g errgroup.Group
	g.SetLimit(8)
	for i, key := range keys {
		g.Go(func() error {
			if err := p.Remove(ctx, key); err != nil {
				errs[i] = fmt.Errorf("failed to remove %s: %w", key, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func checksum(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func contentType(rel string) string {
	if ct := mime.TypeByExtension(path.Ext(rel)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
