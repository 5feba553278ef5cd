package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"adperf/internal/core/domain"
	"adperf/internal/metrics"
)

// Entity is one thing a Loader fetches aggregates for. Key must be unique
// within an entity set; Start and End are its optional key parameters.
type Entity struct {
	Key   string
	Start *civil.Date
	End   *civil.Date
}

// Range returns Start..End, or nil while either is missing.
func (e Entity) Range() *domain.DateRange {
	if e.Start == nil || e.End == nil {
		return nil
	}
	return &domain.DateRange{Start: *e.Start, End: *e.End}
}

func (e Entity) signature() string {
	var start, end string
	if e.Start != nil {
		start = e.Start.String()
	}
	if e.End != nil {
		end = e.End.String()
	}
	// the key is quoted so no key can forge the separators
	return strconv.Quote(e.Key) + ":" + start + ":" + end
}

// FetchFunc loads the aggregates of one entity.
type FetchFunc func(ctx context.Context, e Entity) (domain.Aggregates, error)

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// Name labels logs and metrics.
	Name string
	// RequireRange resolves entities without a Range immediately, without
	// fetching, to a state with neither aggregates nor error.
	RequireRange bool
	// FallbackError replaces empty error messages.
	FallbackError string
}

// Loader keeps one LoadState per entity of the current entity set and fetches
// all of them concurrently whenever the set or any key parameter changes.
//
// Every Sync that changes the set starts a new cycle and bumps the epoch.
// In-flight fetches of older cycles are not cancelled; their results are
// dropped when they arrive because their epoch is no longer current. Within a
// cycle every Retry bumps the key's generation, so only the latest fetch of a
// key may commit.
type Loader struct {
	cfg     LoaderConfig
	fetch   FetchFunc
	ctx     context.Context
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu        sync.Mutex
	epoch     uint64
	synced    bool
	signature string
	entities  map[string]Entity
	states    map[string]domain.LoadState
	gens      map[string]uint64
	done      chan struct{}
}

// NewLoader returns a Loader whose fetches run on ctx. ctx should live as long
// as the application, not a single request.
func NewLoader(ctx context.Context, cfg LoaderConfig, fetch FetchFunc, logger *slog.Logger, m *metrics.Metrics) *Loader {
	if cfg.FallbackError == "" {
		cfg.FallbackError = "Failed to load data"
	}
	if m == nil {
		m = metrics.NewMetrics(nil)
	}
	done := make(chan struct{})
	close(done)
	return &Loader{
		cfg:      cfg,
		fetch:    fetch,
		ctx:      ctx,
		logger:   logger.With(slog.String("loader", cfg.Name)),
		metrics:  m,
		entities: map[string]Entity{},
		states:   map[string]domain.LoadState{},
		gens:     map[string]uint64{},
		done:     done,
	}
}

// Sync makes entities the current entity set. When the set and all key
// parameters equal the previous call it does nothing and returns the channel
// of the running cycle. Otherwise it starts a new cycle and returns a channel
// closed once every fetch of that cycle has returned, committed or not.
// Duplicate keys keep their first occurrence.
func (l *Loader) Sync(entities []Entity) <-chan struct{} {
	sigs := make([]string, len(entities))
	for i, e := range entities {
		sigs[i] = e.signature()
	}
	signature := strings.Join(sigs, "|")

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.synced && signature == l.signature {
		return l.done
	}
	l.synced = true
	l.signature = signature
	l.epoch++
	epoch := l.epoch
	l.metrics.LoaderCycles.WithLabelValues(l.cfg.Name).Inc()

	l.entities = make(map[string]Entity, len(entities))
	l.states = make(map[string]domain.LoadState, len(entities))
	l.gens = make(map[string]uint64, len(entities))
	pending := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if _, dup := l.entities[e.Key]; dup {
			continue
		}
		l.entities[e.Key] = e
		if l.cfg.RequireRange && e.Range() == nil {
			l.states[e.Key] = domain.LoadState{}
			l.metrics.LoaderResults.WithLabelValues(l.cfg.Name, "skipped").Inc()
			continue
		}
		l.states[e.Key] = domain.Loading()
		pending = append(pending, e)
	}

	done := make(chan struct{})
	l.done = done
	if len(pending) == 0 {
		close(done)
		return done
	}

	l.logger.Debug("load cycle started", slog.Uint64("epoch", epoch), slog.Int("entities", len(pending)))

	var g errgroup.Group
	for _, e := range pending {
		g.Go(func() error {
			l.run(epoch, 0, e)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(done)
	}()
	return done
}

// Retry fetches one entity of the current set again. It reports false when
// key is not in the set or cannot be fetched. A fetch of key still in flight
// can no longer commit.
func (l *Loader) Retry(key string) (<-chan struct{}, bool) {
	l.mu.Lock()
	e, ok := l.entities[key]
	if !ok || (l.cfg.RequireRange && e.Range() == nil) {
		l.mu.Unlock()
		return nil, false
	}
	l.states[key] = domain.Loading()
	l.gens[key]++
	epoch, gen := l.epoch, l.gens[key]
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.run(epoch, gen, e)
	}()
	return done, true
}

// Snapshot returns a copy of the state map.
func (l *Loader) Snapshot() map[string]domain.LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]domain.LoadState, len(l.states))
	for k, v := range l.states {
		out[k] = v
	}
	return out
}

// State returns the state of key in the current set.
func (l *Loader) State(key string) (domain.LoadState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.states[key]
	return s, ok
}

func (l *Loader) run(epoch, gen uint64, e Entity) {
	start := time.Now()
	agg, err := l.fetch(l.ctx, e)

	state := domain.Loaded(agg)
	result := "ok"
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = l.cfg.FallbackError
		}
		state = domain.Failed(msg)
		result = "error"
	}

	if !l.commit(epoch, gen, e.Key, state) {
		result = "stale"
	}
	l.metrics.LoaderResults.WithLabelValues(l.cfg.Name, result).Inc()

	attrs := []any{
		slog.String("key", e.Key),
		slog.Uint64("epoch", epoch),
		slog.String("result", result),
		slog.Duration("latency", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
		l.logger.Warn("fetch failed", attrs...)
		return
	}
	l.logger.Debug("fetch finished", attrs...)
}

// commit stores state for key only if epoch and the key's generation are
// still current and key is still part of the set.
func (l *Loader) commit(epoch, gen uint64, key string, state domain.LoadState) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if epoch != l.epoch || gen != l.gens[key] {
		return false
	}
	if _, ok := l.states[key]; !ok {
		return false
	}
	l.states[key] = state
	return true
}
