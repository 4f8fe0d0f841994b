// Package session holds the authenticated session of the running application.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys shared with every other client of the backend.
const (
	KeyToken = "auth-token"
	KeyUser  = "auth-user"
)

// Listener receives a snapshot after every session change.
type Listener func(entity.Session)

// Store is the single source of truth for who is logged in.
// It is safe for concurrent use.
type Store struct {
	storage service.SecureStorage
	logger  *slog.Logger
	now     func() time.Time

	hydrateOnce sync.Once

	mu       sync.RWMutex
	user     *entity.User
	token    string
	hydrated bool

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to check persisted token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty, not yet hydrated Store.
func NewStore(storage service.SecureStorage, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		logger:    logger,
		now:       time.Now,
		listeners: map[int]Listener{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LoadSession restores the persisted session. Only the first call does any work;
// storage and decode failures leave the session anonymous and are only logged.
func (s *Store) LoadSession(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		user, token := s.readPersisted(ctx)

		s.mu.Lock()
		if s.user == nil && user != nil && token != "" {
			s.user = user
			s.token = token
		}
		s.hydrated = true
		s.mu.Unlock()

		s.notify()
	})
}

func (s *Store) readPersisted(ctx context.Context) (*entity.User, string) {
	token, tokenFound, err := s.storage.Get(ctx, KeyToken)
	if err != nil {
		s.logger.Error("Failed to read stored token", slog.Any("error", err))

		return nil, ""
	}

	rawUser, userFound, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		s.logger.Error("Failed to read stored user", slog.Any("error", err))

		return nil, ""
	}

	if !tokenFound || !userFound || token == "" || rawUser == "" {
		return nil, ""
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Error("Failed to decode stored user", slog.Any("error", err))

		return nil, ""
	}

	if s.expired(token) {
		s.logger.Info("Stored token expired, discarding session")
		s.clearPersisted(ctx)

		return nil, ""
	}

	return &user, token
}

// expired reports whether token is a JWT whose exp claim has passed.
// Tokens that are not JWTs never expire client-side.
func (s *Store) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.After(s.now())
}

// Login persists the pair and makes the session authenticated.
// Persistence is best-effort: the in-memory session is authoritative for this run.
func (s *Store) Login(ctx context.Context, user *entity.User, token string) error {
	if user == nil || token == "" {
		return domainerrors.ErrInvalidSession
	}

	s.persist(ctx, user, token)

	s.mu.Lock()
	u := *user
	s.user = &u
	s.token = token
	s.mu.Unlock()

	s.notify()

	return nil
}

// ReplaceUser swaps the session user and keeps the current token.
func (s *Store) ReplaceUser(ctx context.Context, user *entity.User) error {
	if user == nil {
		return domainerrors.ErrInvalidSession
	}

	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return domainerrors.ErrNotAuthenticated
	}

	return s.Login(ctx, user, token)
}

// Logout removes the persisted pair and resets the session. Calling it twice is harmless.
func (s *Store) Logout(ctx context.Context) {
	s.clearPersisted(ctx)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.notify()
}

func (s *Store) persist(ctx context.Context, user *entity.User, token string) {
	if err := s.storage.Set(ctx, KeyToken, token); err != nil {
		s.logger.Error("Failed to persist token", slog.Any("error", err))
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("Failed to encode user", slog.Any("error", err))

		return
	}
	if err := s.storage.Set(ctx, KeyUser, string(data)); err != nil {
		s.logger.Error("Failed to persist user", slog.Any("error", err))
	}
}

func (s *Store) clearPersisted(ctx context.Context) {
	if err := s.storage.Delete(ctx, KeyToken); err != nil {
		s.logger.Error("Failed to delete stored token", slog.Any("error", err))
	}
	if err := s.storage.Delete(ctx, KeyUser); err != nil {
		s.logger.Error("Failed to delete stored user", slog.Any("error", err))
	}
}

// Token returns the current bearer token, empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() entity.Session {
	var user *entity.User
	if s.user != nil {
		u := *s.user
		user = &u
	}

	return entity.Session{
		User:            user,
		Token:           s.token,
		IsAuthenticated: s.user != nil && s.token != "",
		IsHydrated:      s.hydrated,
	}
}

// Subscribe registers fn for change notifications and returns its cancel func.
func (s *Store) Subscribe(fn Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.listenersMu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
