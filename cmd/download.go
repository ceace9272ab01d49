package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"figma-asset-downloader/core/database"
	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/core/storage"
	"figma-asset-downloader/feature/download"
	"figma-asset-downloader/feature/figma"
	"figma-asset-downloader/feature/history"
	"figma-asset-downloader/feature/optimize"
	"figma-asset-downloader/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// downloadFlagKeys maps download flags to configuration keys.
var downloadFlagKeys = map[string]string{
	"personal-access-token":  "figma.token",
	"file-id":                "figma.file_id",
	"document-id":            "figma.document_ids",
	"path":                   "download.path",
	"file-extensions":        "download.file_extensions",
	"file-scales":            "download.file_scales",
	"force-file-extensions":  "download.force_file_extensions",
	"only-missing":           "download.only_missing",
	"concurrency":            "download.concurrency",
	"opt-png-level":          "optimize.png_level",
	"opt-jpg-level":          "optimize.jpg_quality",
	"opt-only-on-validation": "optimize.only_on_validation",
	"publish":                "storage.enabled",
	"history":                "database.enabled",
}

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the frames of a Figma file as images",
	Long: `Downloads every frame of the given document nodes.

Frames named with an extension (logo.svg, photo.jpg) are exported in that format,
the others in every --file-extensions format. Scale 1 images are written to the
root of --path, other scales to "<scale>.0x" folders.

Examples:
  # Export PNG and SVG at 1x and 2x
  fad download -t TOKEN -f FILE_ID -d 0:1 -e png,svg -s 1,2

  # Only fetch images that are not in the folder yet, then optimize PNGs
  fad download --only-missing --opt-png-level 3`,
	RunE: runDownload,
}

func init() {
	addDownloadFlags(downloadCmd)
	RootCmd.AddCommand(downloadCmd)
}

func addDownloadFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("personal-access-token", "t", "", "Figma personal access token")
	f.StringP("file-id", "f", "", "Figma file id (www.figma.com/file/FILE_ID/title?node-id=DOCUMENT_ID)")
	f.StringSliceP("document-id", "d", nil, "Document node ids to export, comma separated")
	f.StringP("path", "p", "downloads", "Folder the images are written to")
	f.StringSliceP("file-extensions", "e", []string{"png"}, "Formats for frames without an extension (png, jpg, svg, pdf)")
	f.IntSliceP("file-scales", "s", []int{1}, "Scales to export")
	f.Bool("force-file-extensions", false, "Export every frame in --file-extensions, ignoring extensions in frame names")
	f.Bool("only-missing", false, "Skip images whose file already exists")
	f.Int("concurrency", 8, "Maximum simultaneous downloads")
	f.Int("opt-png-level", 0, "PNG optimization level 1-6 (0 disables)")
	f.Int("opt-jpg-level", 0, "JPEG quality 1-100 (0 disables)")
	f.Bool("opt-only-on-validation", false, "Optimize only new assets during validate-manifest")
	f.Bool("publish", false, "Upload the folder to the configured bucket afterwards")
	f.Bool("history", false, "Record downloads in the configured database")
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd, downloadFlagKeys)
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if err := cfg.Figma.Validate(); err != nil {
		return err
	}

	var opts download.Options

	if cfg.Optimize.Enabled() && !cfg.Optimize.OnlyOnValidation {
		opts.Optimizer = optimize.New(cfg.Optimize, l)
	}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		opts.Publisher = publish.NewPublisher(client, cfg.Storage.Bucket, cfg.Storage.Prefix, l)
	}

	if cfg.Database.Enabled {
		// History is optional: a broken database never blocks a download
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Optional database connection failed", zap.Error(err))
		} else {
			repo := history.NewRepository(db)
			if err := repo.Migrate(ctx); err != nil {
				l.Warn("Download history disabled", zap.Error(err))
			} else {
				opts.History = repo
			}
		}
	}

	l.Info("Preparing",
		zap.String("path", cfg.Download.Path),
		zap.Strings("formats", cfg.Download.FileExtensions),
		zap.Ints("scales", cfg.Download.FileScales))

	client := figma.NewClient(cfg.Figma, l)
	svc := download.NewService(client, cfg.Figma, cfg.Download, opts, l)

	summary, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	return summary.Err()
}
