package reconcile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Mutator applies follow-up actions to asset files.
// Paths passed to it are absolute (assets directory joined with the relative path).
type Mutator interface {
	// Optimize recompresses the file in place.
	Optimize(ctx context.Context, path string) error
	// Remove deletes the file.
	Remove(ctx context.Context, path string) error
}

// BatchRemover is an optional Mutator extension for deleting many files in one call.
type BatchRemover interface {
	RemoveBatch(ctx context.Context, paths []string) error
}

// BuildPlan derives follow-up actions from a check result.
// It does NOT execute anything; use ApplyPlan for that.
func BuildPlan(result *CheckResult, opts PlanOptions) *Plan {
	plan := &Plan{
		AssetsDir: result.AssetsDir,
		Actions:   []Action{},
		Summary: PlanSummary{
			Missing: len(result.Report.Missing),
			New:     len(result.Report.New),
		},
	}

	for _, asset := range result.Report.New {
		// Purge takes precedence: an asset about to be deleted is not worth optimizing
		if opts.Purge {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionPurge,
				Path:   asset,
				Reason: "not declared in manifest",
			})
			plan.Summary.PurgeActions++
			continue
		}
		if opts.Optimize {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionOptimize,
				Path:   asset,
				Reason: "new asset",
			})
			plan.Summary.OptimizeActions++
		}
	}

	return plan
}

// ApplyPlan executes the actions in a plan.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
// A failing action does not stop the others; all failures are joined into the returned error.
func ApplyPlan(ctx context.Context, plan *Plan, mutator Mutator, opts PlanOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var (
		optimizePaths []string
		purgePaths    []string
		errs          []error
	)

	for _, action := range plan.Actions {
		full := filepath.Join(plan.AssetsDir, filepath.FromSlash(action.Path))
		switch action.Type {
		case ActionOptimize:
			optimizePaths = append(optimizePaths, full)
		case ActionPurge:
			purgePaths = append(purgePaths, full)
		}
	}

	for _, p := range optimizePaths {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := mutator.Optimize(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("failed to optimize %s: %w", p, err))
			continue
		}
		executed++
	}

	if len(purgePaths) > 0 {
		if batch, ok := mutator.(BatchRemover); ok {
			if err := batch.RemoveBatch(ctx, purgePaths); err != nil {
				errs = append(errs, fmt.Errorf("failed to batch remove assets: %w", err))
			} else {
				executed += len(purgePaths)
			}
		} else {
			for _, p := range purgePaths {
				if err := mutator.Remove(ctx, p); err != nil {
					errs = append(errs, fmt.Errorf("failed to remove %s: %w", p, err))
					continue
				}
				executed++
			}
		}
	}

	return executed, errors.Join(errs...)
}
