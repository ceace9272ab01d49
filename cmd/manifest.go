package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"figma-asset-downloader/core/config"
	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/core/reconcile"
	"figma-asset-downloader/core/storage"
	"figma-asset-downloader/feature/manifest"
	"figma-asset-downloader/feature/optimize"
	"figma-asset-downloader/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrManifestMismatch is returned with --strict when assets do not match the manifest.
var ErrManifestMismatch = errors.New("assets do not match the manifest")

var (
	optimizeNew    bool
	purgeNew       bool
	dryRunManifest bool
	yesManifest    bool
	bucketManifest bool
	jsonManifest   bool
	strictManifest bool
)

var manifestFlagKeys = map[string]string{
	"opt-png-level": "optimize.png_level",
	"opt-jpg-level": "optimize.jpg_quality",
}

// validateManifestCmd checks an asset folder against a manifest.
var validateManifestCmd = &cobra.Command{
	Use:   "validate-manifest [path]",
	Short: "Validate the assets folder against a manifest",
	Long: `Compares the files declared in a manifest with the files in its assets folder.

Reports assets that are missing and assets that are new (present but not declared).
New assets can optionally be optimized or purged.

Examples:
  # Report only
  fad validate-manifest

  # Check another manifest and print JSON
  fad validate-manifest assets/fad-manifest.toml --json

  # Optimize new PNG assets
  fad validate-manifest --optimize --opt-png-level 4

  # Delete undeclared assets (with interactive confirmation)
  fad validate-manifest --purge

  # Check the published copy in the configured bucket
  fad validate-manifest --bucket`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidateManifest,
}

func init() {
	f := validateManifestCmd.Flags()
	f.BoolVar(&optimizeNew, "optimize", false, "Optimize new assets (also enabled by optimize.only_on_validation)")
	f.BoolVar(&purgeNew, "purge", false, "Delete new assets")
	f.BoolVar(&dryRunManifest, "dry-run", false, "Plan actions without executing them")
	f.BoolVarP(&yesManifest, "yes", "y", false, "Auto-confirm destructive actions (non-interactive)")
	f.BoolVar(&bucketManifest, "bucket", false, "Check the objects published to the configured bucket")
	f.BoolVar(&jsonManifest, "json", false, "Print the result as JSON")
	f.BoolVar(&strictManifest, "strict", false, "Exit with an error when assets are missing or new")
	f.Int("opt-png-level", 0, "PNG optimization level 1-6")
	f.Int("opt-jpg-level", 0, "JPEG quality 1-100")

	RootCmd.AddCommand(validateManifestCmd)
}

func runValidateManifest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path := manifest.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := loadConfig(cmd, manifestFlagKeys)
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	source, mutator, err := manifestSource(cfg, path, l)
	if err != nil {
		return err
	}

	svc := manifest.NewService(l, nil, mutator)
	out := cmd.OutOrStdout()

	result, err := svc.Check(ctx, source)
	if err != nil {
		return fmt.Errorf("some error occurred while trying to work with the manifest: %w", err)
	}

	opts := reconcile.PlanOptions{
		Optimize: optimizeNew || cfg.Optimize.OnlyOnValidation,
		Purge:    purgeNew,
		DryRun:   dryRunManifest,
	}
	if opts.Optimize && !opts.Purge && !cfg.Optimize.Enabled() {
		l.Warn("Optimization requested but no level is configured; set --opt-png-level or --opt-jpg-level")
		opts.Optimize = false
	}
	plan := svc.Plan(result, opts)

	if jsonManifest {
		if err := printJSON(out, result, plan); err != nil {
			return err
		}
	} else {
		manifest.Display(out, result.Report)
		manifest.DisplayPlan(out, plan)
	}

	if len(plan.Actions) > 0 {
		if err := applyManifestPlan(ctx, svc, source, plan, opts, l); err != nil {
			return err
		}
	}

	if strictManifest && !result.Report.IsClean() {
		return ErrManifestMismatch
	}
	return nil
}

func manifestSource(cfg *config.Config, path string, l *zap.Logger) (reconcile.Source, reconcile.Mutator, error) {
	if !bucketManifest {
		return manifest.NewFileSource(path), optimize.New(cfg.Optimize, l), nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	source := manifest.NewBucketSource(path, client, cfg.Storage.Bucket, cfg.Storage.Prefix)
	return source, publish.NewPublisher(client, cfg.Storage.Bucket, "", l), nil
}

func applyManifestPlan(ctx context.Context, svc *manifest.Service, source reconcile.Source, plan *reconcile.Plan, opts reconcile.PlanOptions, l *zap.Logger) error {
	if opts.DryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Optimizing rewrites files in place; only deletion asks for confirmation
	if plan.Summary.PurgeActions > 0 && !confirmDestructiveAction(yesManifest, os.Stdin) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	executed, err := svc.Apply(ctx, source, plan, opts)
	l.Info("Executed actions", zap.Int("count", executed), zap.Int("planned", len(plan.Actions)))
	if err != nil {
		return fmt.Errorf("some actions failed: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, result *reconcile.CheckResult, plan *reconcile.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*reconcile.CheckResult
		Plan *reconcile.Plan `json:"plan,omitempty"`
	}{result, planOrNil(plan)})
}

func planOrNil(plan *reconcile.Plan) *reconcile.Plan {
	if len(plan.Actions) == 0 {
		return nil
	}
	return plan
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(yes bool, in io.Reader) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
