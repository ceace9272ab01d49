package manifest

import (
	"context"

	"figma-asset-downloader/core/reconcile"

	"go.uber.org/zap"
)

// Service runs manifest checks and their follow-up actions.
type Service struct {
	logger  *zap.Logger
	cache   *reconcile.ListingCache
	mutator reconcile.Mutator
}

// NewService creates a manifest service. cache and mutator may be nil.
func NewService(logger *zap.Logger, cache *reconcile.ListingCache, mutator reconcile.Mutator) *Service {
	return &Service{
		logger:  logger,
		cache:   cache,
		mutator: mutator,
	}
}

// Check reconciles the manifest of source against its assets.
func (s *Service) Check(ctx context.Context, source reconcile.Source) (*reconcile.CheckResult, error) {
	checker := reconcile.NewChecker(source)
	if s.cache != nil {
		checker.WithCache(s.cache)
	}

	result, err := checker.Check(ctx)
	if err != nil {
		s.logger.Debug("Manifest check failed",
			zap.String("source", source.Name()),
			zap.String("kind", reconcile.KindOf(err).String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Manifest checked",
		zap.String("source", source.Name()),
		zap.String("assets_dir", result.AssetsDir),
		zap.Int("missing", len(result.Report.Missing)),
		zap.Int("new", len(result.Report.New)))

	return result, nil
}

// Plan derives the follow-up actions for a check result.
func (s *Service) Plan(result *reconcile.CheckResult, opts reconcile.PlanOptions) *reconcile.Plan {
	return reconcile.BuildPlan(result, opts)
}

// Apply executes a plan and drops the cached listing it made stale.
func (s *Service) Apply(ctx context.Context, source reconcile.Source, plan *reconcile.Plan, opts reconcile.PlanOptions) (int, error) {
	if s.mutator == nil {
		return 0, reconcile.ErrGeneric
	}

	executed, err := reconcile.ApplyPlan(ctx, plan, s.mutator, opts)
	if executed > 0 && s.cache != nil {
		s.cache.Invalidate(source, plan.AssetsDir)
	}
	if err != nil {
		s.logger.Warn("Some actions failed", zap.Int("executed", executed), zap.Error(err))
	}
	return executed, err
}
