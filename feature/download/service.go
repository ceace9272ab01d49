package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"figma-asset-downloader/feature/figma"
	"figma-asset-downloader/feature/history"
	"figma-asset-downloader/feature/optimize"
	"figma-asset-downloader/feature/publish"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the part of the Figma client the pipeline uses.
type API interface {
	GetFrames(ctx context.Context, fileID string, documentIDs []string) ([]figma.Node, error)
	GetImages(ctx context.Context, fileID string, frames []figma.Node, scales []int, formats []string, force bool) []figma.Image
	Download(ctx context.Context, link string) (io.ReadCloser, error)
}

// Options holds the optional pipeline stages. Nil stages are skipped.
type Options struct {
	Optimizer *optimize.Optimizer
	Publisher *publish.Publisher
	History   *history.Repository
}

// Result is the outcome of one image.
type Result struct {
	Image   figma.Image `json:"image"`
	Path    string      `json:"path"`
	Bytes   int64       `json:"bytes"`
	Skipped bool        `json:"skipped,omitempty"`
	Err     error       `json:"-"`
}

// Summary aggregates a run.
type Summary struct {
	Downloaded int             `json:"downloaded"`
	Failed     int             `json:"failed"`
	Skipped    int             `json:"skipped"`
	Bytes      int64           `json:"bytes"`
	Published  int             `json:"published"`
	Results    []Result        `json:"results"`
	Duration   time.Duration   `json:"duration"`
	Publish    *publish.Result `json:"publish,omitempty"`
}

// Service downloads the frames of a Figma file into a folder.
type Service struct {
	api    API
	figma  figma.Config
	cfg    Config
	opts   Options
	logger *zap.Logger
}

// NewService creates a download service.
func NewService(api API, figmaCfg figma.Config, cfg Config, opts Options, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		figma:  figmaCfg,
		cfg:    cfg,
		opts:   opts,
		logger: logger,
	}
}

// Run executes the pipeline: frames, image URLs, folders, downloads, then the optional stages.
// A failing image never stops the others; only setup failures are returned as errors.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	if err := s.figma.Validate(); err != nil {
		return nil, err
	}

	root := s.cfg.Path
	lock, err := Lock(root)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("Failed to release download lock", zap.Error(err))
		}
	}()

	frames, err := s.api.GetFrames(ctx, s.figma.FileID, s.figma.DocumentIDs)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Frames found", zap.Int("count", len(frames)))

	images := s.api.GetImages(ctx, s.figma.FileID, frames, s.cfg.FileScales, s.cfg.FileExtensions, s.cfg.ForceFileExtensions)
	s.logger.Info("Image URLs resolved", zap.Int("count", len(images)))

	s.logger.Info("Creating the folder structure", zap.String("path", root))
	if err := PrepareFolders(root, s.cfg.FileScales); err != nil {
		return nil, err
	}

	pending, skipped := SelectPending(images, root, s.cfg.OnlyMissing)

	summary := &Summary{Skipped: len(skipped)}
	for _, task := range skipped {
		summary.Results = append(summary.Results, Result{Image: task.Image, Path: task.Path, Skipped: true})
	}

	results := s.download(ctx, pending)
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Downloaded++
			summary.Bytes += r.Bytes
		}
	}
	summary.Results = append(summary.Results, results...)

	if s.opts.Publisher != nil {
		published, err := s.opts.Publisher.PublishTree(ctx, root)
		if err != nil {
			s.logger.Error("Publishing failed", zap.Error(err))
		}
		if published != nil {
			summary.Publish = published
			summary.Published = len(published.Uploaded)
		}
	}

	s.record(ctx, summary.Results)

	summary.Duration = time.Since(start)
	s.logger.Info("Download finished",
		zap.Int("downloaded", summary.Downloaded),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.String("size", humanize.Bytes(uint64(summary.Bytes))),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

func (s *Service) download(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))

	limit := s.cfg.Concurrency
	if limit <= 0 {
		limit = 8
	}

	// Tasks never return errors so one failure cannot cancel its siblings
	var g errgroup.Group
	g.SetLimit(limit)

	for i, task := range tasks {
		g.Go(func() error {
			results[i] = s.downloadOne(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Service) downloadOne(ctx context.Context, task Task) Result {
	result := Result{Image: task.Image, Path: task.Path}
	l := s.logger.With(zap.String("path", task.Path))

	n, err := s.fetch(ctx, task)
	if err != nil {
		l.Error("Error downloading image", zap.Error(err))
		result.Err = err
		return result
	}
	result.Bytes = n

	if s.opts.Optimizer != nil && s.opts.Optimizer.Supports(task.Image.Format) {
		if err := s.opts.Optimizer.OptimizeFile(task.Path, task.Image.Format); err != nil {
			l.Warn("Error optimizing image", zap.Error(err))
		} else if info, err := os.Stat(task.Path); err == nil {
			result.Bytes = info.Size()
		}
	}

	l.Info("Image downloaded", zap.String("size", humanize.Bytes(uint64(result.Bytes))))
	return result
}

const imageMode os.FileMode = 0o644

// fetch writes the image next to its target and renames it into place.
func (s *Service) fetch(ctx context.Context, task Task) (int64, error) {
	body, err := s.api.Download(ctx, task.Image.URL)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(task.Path), ".fad-*")
	if err != nil {
		return 0, fmt.Errorf("error creating image: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, body)
	if err == nil {
		// CreateTemp uses 0600
		err = tmp.Chmod(imageMode)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("error writing image: %w", err)
	}

	if err := os.Rename(tmp.Name(), task.Path); err != nil {
		return 0, fmt.Errorf("error writing image: %w", err)
	}
	return n, nil
}

func (s *Service) record(ctx context.Context, results []Result) {
	if s.opts.History == nil || len(results) == 0 {
		return
	}

	records := make([]history.DownloadRecord, 0, len(results))
	now := time.Now()
	for _, r := range results {
		rec := history.DownloadRecord{
			FrameID:   r.Image.ID,
			Name:      r.Image.Name,
			Scale:     r.Image.Scale,
			Format:    r.Image.Format,
			Path:      r.Path,
			Bytes:     r.Bytes,
			Status:    history.StatusDownloaded,
			CreatedAt: now,
		}
		switch {
		case r.Skipped:
			rec.Status = history.StatusSkipped
		case r.Err != nil:
			rec.Status = history.StatusFailed
			rec.Error = r.Err.Error()
		}
		records = append(records, rec)
	}

	if err := s.opts.History.Record(ctx, records...); err != nil {
		s.logger.Warn("Failed to record download history", zap.Error(err))
	}
}

// FailedError reports how many images failed in a run.
type FailedError struct {
	Count int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%d images failed to download", e.Count)
}

// Err returns a *FailedError when any image failed.
func (s *Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return &FailedError{Count: s.Failed}
}

// IsFailed reports whether err comes from failed images rather than the setup.
func IsFailed(err error) bool {
	var fe *FailedError
	return errors.As(err, &fe)
}
