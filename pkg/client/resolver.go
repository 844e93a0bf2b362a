package client

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/user/riskdash/pkg/model"
	"github.com/user/riskdash/pkg/view"
)

// Strategy names, in attempt order.
const (
	StrategyPrimary  = "primary"
	StrategyFallback = "fallback"
	StrategyLocal    = "local-filter"
)

// Result is the outcome of one resolve cycle.
type Result struct {
	Epoch    uint64
	Strategy string
	Findings []model.Finding
}

// Resolver turns filter state into an authoritative display list by trying an
// ordered list of resolution strategies until one yields a non-empty result.
// Every resolve carries a monotonically increasing epoch so callers can
// discard results that arrive after a newer resolve has completed.
type Resolver struct {
	client *Client
	raw    []model.Finding
	log    *zap.Logger
	epoch  atomic.Uint64
}

// NewResolver builds a resolver. raw is the caller-owned unfiltered findings
// list used by the last-resort local filter; it may be nil.
func NewResolver(c *Client, raw []model.Finding, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{client: c, raw: raw, log: log}
}

// Resolve runs the cascade for the given filter state. The fallback endpoint
// is only consulted when at least one filter is active, and strictly after the
// primary call has returned; its failures are swallowed. When both endpoints
// come back empty under an active filter, the raw list is filtered locally so
// the user still sees a correctly filtered view. Resolve never returns an
// error: every failure degrades to an empty list and is logged.
func (r *Resolver) Resolve(ctx context.Context, filter view.FilterState) Result {
	epoch := r.epoch.Add(1)
	log := r.log.With(
		zap.Uint64("epoch", epoch),
		zap.String("resolve_id", uuid.NewString()),
		zap.String("risk_level", filter.RiskLevel),
		zap.String("sensitivity", filter.Sensitivity),
	)

	findings, err := r.client.RiskFindings(ctx, filter)
	if err != nil {
		log.Warn("primary findings fetch failed", zap.String("strategy", StrategyPrimary), zap.Error(err))
		findings = nil
	} else {
		log.Debug("strategy attempted", zap.String("strategy", StrategyPrimary), zap.Int("count", len(findings)))
	}
	if len(findings) > 0 {
		return Result{Epoch: epoch, Strategy: StrategyPrimary, Findings: findings}
	}

	if filter.Active() {
		alt, err := r.client.FilteredFindings(ctx, filter)
		if err != nil {
			// The primary result stands; the alternate endpoint is best effort.
			log.Debug("fallback findings fetch failed", zap.String("strategy", StrategyFallback), zap.Error(err))
		} else {
			log.Debug("strategy attempted", zap.String("strategy", StrategyFallback), zap.Int("count", len(alt)))
			if len(alt) > 0 {
				return Result{Epoch: epoch, Strategy: StrategyFallback, Findings: alt}
			}
		}

		if len(r.raw) > 0 {
			local := filter.Apply(r.raw)
			log.Debug("strategy attempted", zap.String("strategy", StrategyLocal), zap.Int("count", len(local)))
			if len(local) > 0 {
				return Result{Epoch: epoch, Strategy: StrategyLocal, Findings: local}
			}
		}
	}

	return Result{Epoch: epoch, Strategy: StrategyPrimary, Findings: []model.Finding{}}
}
