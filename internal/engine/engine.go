// Package engine wires the economic stages — codec, tax rates, stake
// depletion, neighbor yield, auction decay, purchase decisions — behind one
// snapshot-scoped, memoizing facade. This is the surface collaborators use.
package engine

import (
	"fmt"
	"sort"
	"time"

	"parcel-econ-lab/internal/auction"
	"parcel-econ-lab/internal/cache"
	"parcel-econ-lab/internal/decision"
	"parcel-econ-lab/internal/domain"
	"parcel-econ-lab/internal/grid"
	"parcel-econ-lab/internal/observability"
	"parcel-econ-lab/internal/stake"
	"parcel-econ-lab/internal/taxrate"
	"parcel-econ-lab/internal/yield"
)

// Options configures an Engine.
type Options struct {
	Snapshot *domain.Snapshot
	Config   domain.EconomicConfig

	// Index is the precomputed adjacency index. Built from the snapshot
	// when nil.
	Index grid.NeighborIndex

	// Cache is rebound to the snapshot's version; entries from other
	// versions are dropped wholesale. A nil Cache gets a private one.
	Cache *cache.Cache

	// Metrics is optional instrumentation.
	Metrics *observability.Metrics
}

// Engine evaluates one immutable snapshot. Create a new Engine (reusing the
// cache) whenever a poll cycle replaces the snapshot.
type Engine struct {
	snap    *domain.Snapshot
	index   grid.NeighborIndex
	cfg     domain.EconomicConfig
	agg     *yield.Aggregator
	eval    *decision.Evaluator
	cache   *cache.Cache
	metrics *observability.Metrics
}

// yieldResult is the memoized unit for yield computations.
type yieldResult struct {
	info    domain.YieldInfo
	details []domain.NeighborYieldDetail
}

// New creates an engine bound to one snapshot.
func New(opts Options) *Engine {
	index := opts.Index
	if index == nil {
		index = grid.BuildNeighborIndex(opts.Snapshot)
	}
	c := opts.Cache
	if c == nil {
		c = cache.New()
	}
	c.BindSnapshot(opts.Snapshot.Version)
	if opts.Metrics != nil {
		opts.Metrics.SnapshotsBound.Inc()
	}

	return &Engine{
		snap:    opts.Snapshot,
		index:   index,
		cfg:     opts.Config,
		agg:     yield.NewAggregator(opts.Snapshot, index, opts.Config),
		eval:    decision.NewEvaluator(),
		cache:   c,
		metrics: opts.Metrics,
	}
}

// Snapshot returns the bound snapshot.
func (e *Engine) Snapshot() *domain.Snapshot { return e.snap }

// Yield returns the bounded-duration yield summary and per-neighbor detail
// for the parcel at location. Results are memoized per (location, cap,
// mode) within the bound snapshot.
func (e *Engine) Yield(location int, capHours float64, mode yield.Mode) (domain.YieldInfo, []domain.NeighborYieldDetail) {
	key := cache.Key{
		Op:       "yield",
		Location: location,
		Variant:  fmt.Sprintf("cap=%g|mode=%d", capHours, mode),
	}
	if v, ok := e.cache.Get(e.snap.Version, key); ok {
		e.countCache(true)
		r := v.(yieldResult)
		return r.info, r.details
	}
	e.countCache(false)

	info, details := e.agg.Compute(location, capHours, mode, yield.SortByTotalYieldDesc)
	if e.metrics != nil {
		e.metrics.YieldComputations.Inc()
	}
	e.cache.Put(e.snap.Version, key, yieldResult{info: info, details: details})
	return info, details
}

// NukableStatus classifies the solvency of the parcel at location.
// Locations without a parcel report NukableNone: there is nothing to seize.
func (e *Engine) NukableStatus(location int) domain.NukableStatus {
	p := e.snap.ParcelAt(location)
	if p == nil {
		return domain.NukableNone
	}
	remaining := e.agg.TimeRemainingHours(p)
	return stake.Status(p.Staked, remaining*60)
}

// TimeRemainingHours returns the solvency horizon of the parcel at
// location; +Inf when nothing burns its stake, 0 when depleted or absent.
func (e *Engine) TimeRemainingHours(location int) float64 {
	return e.agg.TimeRemainingHours(e.snap.ParcelAt(location))
}

// priceQuantumSeconds is the lattice time-dependent results are quoted on.
// Render ticks landing in the same quantum share one memo entry instead of
// each minting an entry that can never hit again.
const priceQuantumSeconds int64 = 15

func quantize(now int64) int64 {
	return now - now%priceQuantumSeconds
}

// AuctionPrice returns the current decayed price of the auction at
// location in base units, and whether an auction exists there. Prices are
// evaluated and memoized on a 15 second lattice.
func (e *Engine) AuctionPrice(location int, now int64) (float64, bool) {
	listing := e.snap.AuctionAt(location)
	if listing == nil {
		return 0, false
	}

	at := quantize(now)
	key := cache.Key{Op: "auction", Location: location, Variant: fmt.Sprintf("now=%d", at)}
	if v, ok := e.cache.Get(e.snap.Version, key); ok {
		e.countCache(true)
		return v.(float64), true
	}
	e.countCache(false)

	price := auction.CurrentPriceNormalized(listing, at, e.cfg, e.snap.QuoteFor(listing.TokenID))
	if e.metrics != nil {
		e.metrics.AuctionPricesComputed.Inc()
	}
	e.cache.Put(e.snap.Version, key, price)
	return price, true
}

// Recommend scores the parcel-or-auction at location as a purchase. The
// current price comes from the decay engine when the location is auctioned,
// from the normalized ask price otherwise. Yield is aggregated in
// unconstrained mode: the buyer's solvency horizon does not exist yet.
// Results are memoized on the same time lattice as AuctionPrice.
func (e *Engine) Recommend(location int, now int64) *domain.PurchaseRecommendation {
	key := cache.Key{Op: "recommend", Location: location, Variant: fmt.Sprintf("now=%d", quantize(now))}
	if v, ok := e.cache.Get(e.snap.Version, key); ok {
		e.countCache(true)
		return v.(*domain.PurchaseRecommendation)
	}
	e.countCache(false)

	start := time.Now()

	currentPrice, auctioned := e.AuctionPrice(location, now)
	if !auctioned {
		currentPrice = e.snap.ParcelAt(location).PriceValue()
	}

	info, details := e.Yield(location, e.cfg.DurationCapHours, yield.Unconstrained)

	rec := e.eval.Evaluate(decision.Input{
		Location:            location,
		CurrentPrice:        currentPrice,
		MaxYield:            info.TotalYield,
		Details:             details,
		OwnRatePerNeighbor:  e.ownRate(location),
		ActiveNeighborCount: e.agg.ActiveNeighborCount(location),
		TaxableHorizons:     e.agg.TaxableHorizons(location),
		DurationCapHours:    e.cfg.DurationCapHours,
	})

	if e.metrics != nil {
		e.metrics.Recommendations.WithLabelValues(rec.Reason).Inc()
		e.metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	}
	e.cache.Put(e.snap.Version, key, rec)
	return rec
}

// EvaluateAll scores every auctioned and every listed parcel in the
// snapshot and returns the results sorted by net profit, best first.
func (e *Engine) EvaluateAll(now int64) []*domain.PurchaseRecommendation {
	var recs []*domain.PurchaseRecommendation
	for loc := range e.snap.Auctions {
		recs = append(recs, e.Recommend(loc, now))
	}
	for loc, p := range e.snap.Parcels {
		if p.Priced() {
			recs = append(recs, e.Recommend(loc, now))
		}
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].NetProfit != recs[j].NetProfit {
			return recs[i].NetProfit > recs[j].NetProfit
		}
		return recs[i].Location < recs[j].Location
	})
	return recs
}

// ownRate is the per-neighbor tax rate a buyer would pay at location. An
// auctioned or empty cell starts over at the base tier.
func (e *Engine) ownRate(location int) float64 {
	level := domain.LevelBase
	if p := e.snap.ParcelAt(location); p != nil {
		level = p.Level
	}
	return taxrate.PerNeighborRate(level, len(e.index.Neighbors(location)), e.cfg)
}

func (e *Engine) countCache(hit bool) {
	if e.metrics == nil {
		return
	}
	if hit {
		e.metrics.CacheHits.Inc()
	} else {
		e.metrics.CacheMisses.Inc()
	}
}
