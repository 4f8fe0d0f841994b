// Package query is the keyed cache in front of the backend reads.
// Entries deduplicate concurrent fetches, go stale on invalidation and notify subscribers on every change.
package query

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/infra/metrics"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// Status is the lifecycle state of a cache entry.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is a snapshot of one entry.
type State struct {
	Status    Status
	Data      any
	Err       error
	UpdatedAt time.Time
	Stale     bool
	Fetching  bool
}

// HasData reports whether the entry holds a successful result, possibly stale.
func (s State) HasData() bool {
	return !s.UpdatedAt.IsZero()
}

// Subscriber is called with the new state after each change of its key.
type Subscriber func(key Key, state State)

type entry struct {
	key   Key
	state State

	// generation moves on every invalidation so a fetch started earlier lands as stale.
	generation uint64
	// written is the generation of the data held in state. Older fetches never overwrite it.
	written  uint64
	inflight int
}

// Config holds the defaults applied to every fetch.
type Config struct {
	Retry      int
	RetryDelay time.Duration
	StaleTime  time.Duration
}

// Client is an explicit, injectable query cache.
type Client struct {
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	group singleflight.Group
	wg    sync.WaitGroup

	mu      sync.Mutex
	entries map[string]*entry
	subs    map[string]map[int]subscription
	nextSub int
}

type subscription struct {
	key Key
	fn  Subscriber
}

// NewClient creates an empty cache.
func NewClient(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Client {
	if cfg.Retry < 0 {
		cfg.Retry = 0
	}

	return &Client{
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		now:     time.Now,
		entries: map[string]*entry{},
		subs:    map[string]map[int]subscription{},
	}
}

type fetchOptions struct {
	retry     int
	staleTime time.Duration
}

// Option tunes a single Fetch.
type Option func(*fetchOptions)

// WithRetry sets how many extra attempts follow a failed fetch.
func WithRetry(n int) Option {
	return func(o *fetchOptions) {
		if n < 0 {
			n = 0
		}
		o.retry = n
	}
}

// WithStaleTime treats data older than d as stale. Zero keeps data fresh until invalidated.
func WithStaleTime(d time.Duration) Option {
	return func(o *fetchOptions) {
		o.staleTime = d
	}
}

// Fetch returns the cached value for key, or runs fn once for all concurrent callers and caches its result.
// fn runs detached from ctx cancellation: a caller that gives up still lets the response land in the cache.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(context.Context) (T, error), opts ...Option) (T, error) {
	var zero T

	o := fetchOptions{retry: c.cfg.Retry, staleTime: c.cfg.StaleTime}
	for _, opt := range opts {
		opt(&o)
	}

	if data, ok := c.fresh(key, o.staleTime); ok {
		if v, ok := data.(T); ok {
			c.metrics.CacheHit()

			return v, nil
		}
	}
	c.metrics.CacheMiss()

	type result struct {
		val any
		err error
	}
	done := make(chan result, 1)

	detached := context.WithoutCancel(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		val, err, _ := c.group.Do(key.String(), func() (any, error) {
			return c.run(detached, key, o.retry, func(ctx context.Context) (any, error) {
				return fn(ctx)
			})
		})
		done <- result{val: val, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return zero, res.err
		}
		if res.val == nil {
			return zero, nil
		}
		v, ok := res.val.(T)
		if !ok {
			return zero, errors.Errorf("query %v: cached %T is not %T", []string(key), res.val, zero)
		}

		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// fresh returns the cached data when it can be served without fetching.
func (c *Client) fresh(key Key, staleTime time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.state.HasData() || e.state.Stale {
		return nil, false
	}
	if staleTime > 0 && c.now().Sub(e.state.UpdatedAt) > staleTime {
		return nil, false
	}

	return e.state.Data, true
}

func (c *Client) run(ctx context.Context, key Key, retry int, fn func(context.Context) (any, error)) (any, error) {
	e, generation := c.begin(key)

	var (
		val any
		err error
	)
	for attempt := 0; attempt <= retry; attempt++ {
		if attempt > 0 && c.cfg.RetryDelay > 0 {
			time.Sleep(c.cfg.RetryDelay)
		}
		val, err = fn(ctx)
		if err == nil {
			break
		}
		c.logger.Debug("Query attempt failed",
			slog.Any("key", []string(key)),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)
	}

	c.settle(e, generation, val, err)

	return val, err
}

func (c *Client) begin(key Key) (*entry, uint64) {
	c.mu.Lock()
	e := c.entryLocked(key)
	e.inflight++
	e.state.Fetching = true
	if !e.state.HasData() {
		e.state.Status = StatusLoading
	}
	state, generation := e.state, e.generation
	subs := c.subscribersLocked(key)
	c.mu.Unlock()

	notify(subs, key, state)

	return e, generation
}

func (c *Client) settle(e *entry, generation uint64, val any, err error) {
	c.mu.Lock()
	if c.entries[e.key.String()] != e {
		// Cleared while fetching.
		c.mu.Unlock()

		return
	}

	e.inflight--
	switch {
	case generation < e.written:
		// A newer fetch or a write-through already landed.
		c.logger.Debug("Discarding superseded query result", slog.Any("key", []string(e.key)))
	case err != nil:
		e.state.Status = StatusError
		e.state.Err = err
	default:
		e.written = generation
		e.state = State{
			Status:    StatusSuccess,
			Data:      val,
			UpdatedAt: c.now(),
			Stale:     e.generation != generation,
		}
	}
	e.state.Fetching = e.inflight > 0
	state := e.state
	subs := c.subscribersLocked(e.key)
	c.mu.Unlock()

	notify(subs, e.key, state)
}

// Invalidate marks every entry whose key starts with prefix as stale and returns how many were marked.
func (c *Client) Invalidate(prefix Key) int {
	type change struct {
		key   Key
		state State
		subs  []Subscriber
	}

	c.mu.Lock()
	var changes []change
	for _, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.generation++
		e.state.Stale = true
		// Later reads must not join a fetch that started before the invalidation.
		c.group.Forget(e.key.String())
		changes = append(changes, change{key: e.key, state: e.state, subs: c.subscribersLocked(e.key)})
	}
	c.mu.Unlock()

	c.metrics.Invalidated(len(changes))
	for _, ch := range changes {
		notify(ch.subs, ch.key, ch.state)
	}

	return len(changes)
}

// SetQueryData writes data for key as a fresh successful result.
func (c *Client) SetQueryData(key Key, data any) {
	c.mu.Lock()
	e := c.entryLocked(key)
	e.generation++
	e.written = e.generation
	c.group.Forget(e.key.String())
	e.state = State{
		Status:    StatusSuccess,
		Data:      data,
		UpdatedAt: c.now(),
		Fetching:  e.state.Fetching,
	}
	state := e.state
	subs := c.subscribersLocked(key)
	c.mu.Unlock()

	notify(subs, key, state)
}

// GetQueryData returns the cached data for key, stale or not.
func (c *Client) GetQueryData(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.state.HasData() {
		return nil, false
	}

	return e.state.Data, true
}

// State returns the current state of key; unknown keys are idle.
func (c *Client) State(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok {
		return State{Status: StatusIdle}
	}

	return e.state
}

// Clear drops every entry and tells subscribers their keys are idle again.
func (c *Client) Clear() {
	c.mu.Lock()
	for k := range c.entries {
		c.group.Forget(k)
	}
	c.entries = map[string]*entry{}
	all := make([]subscription, 0)
	for _, byID := range c.subs {
		for _, sub := range byID {
			all = append(all, sub)
		}
	}
	c.mu.Unlock()

	for _, sub := range all {
		sub.fn(sub.key, State{Status: StatusIdle})
	}
}

// Subscribe calls fn on every state change of key until the returned func is called.
func (c *Client) Subscribe(key Key, fn Subscriber) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	k := key.String()
	if c.subs[k] == nil {
		c.subs[k] = map[int]subscription{}
	}
	c.subs[k][id] = subscription{key: key, fn: fn}
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs[k], id)
		if len(c.subs[k]) == 0 {
			delete(c.subs, k)
		}
		c.mu.Unlock()
	}
}

// Wait blocks until every fetch started so far has finished.
func (c *Client) Wait() {
	c.wg.Wait()
}

func (c *Client) entryLocked(key Key) *entry {
	k := key.String()
	e, ok := c.entries[k]
	if !ok {
		e = &entry{key: append(Key(nil), key...), state: State{Status: StatusIdle}}
		c.entries[k] = e
	}

	return e
}

func (c *Client) subscribersLocked(key Key) []Subscriber {
	byID := c.subs[key.String()]
	if len(byID) == 0 {
		return nil
	}

	fns := make([]Subscriber, 0, len(byID))
	for _, sub := range byID {
		fns = append(fns, sub.fn)
	}

	return fns
}

func notify(subs []Subscriber, key Key, state State) {
	for _, fn := range subs {
		fn(key, state)
	}
}
