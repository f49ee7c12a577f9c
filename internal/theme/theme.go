// Package theme holds the process-wide light/dark display preference.
//
// The Store reads its value once at construction, writes through to durable
// storage on every mutation, and notifies subscribers synchronously.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/rs/zerolog"
)

// Mode is a display theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// DefaultMode is used when neither storage nor the ambient signal has a value.
const DefaultMode = Dark

// DefaultKey is the storage key the preference is persisted under.
const DefaultKey = "theme-storage"

// ErrInvalidMode is returned for anything other than Light or Dark.
var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode converts s (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Valid reports whether m is Light or Dark.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

func (m Mode) String() string { return string(m) }

// Ambient reports the host's dark-mode preference. ok is false when the host
// has no opinion.
type Ambient func() (prefersDark bool, ok bool)

// record is the persisted layout.
type record struct {
	Mode Mode `json:"mode"`
}

type subscriber struct {
	id int
	fn func(Mode)
}

// Store is the single source of truth for the active theme.
type Store struct {
	storage store.Store
	key     string
	ambient Ambient
	timeout time.Duration
	logger  zerolog.Logger

	// writeMu serializes mutations together with their notifications so
	// subscribers observe changes in order.
	writeMu sync.Mutex

	mu     sync.RWMutex
	mode   Mode
	subs   []subscriber
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithAmbient sets the cold-start signal.
func WithAmbient(a Ambient) Option {
	return func(s *Store) { s.ambient = a }
}

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New loads the persisted preference from storage, seeding it if absent.
func New(storage store.Store, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     DefaultKey,
		timeout: 5 * time.Second,
		logger:  logging.Component("theme"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mode = s.load()
	return s
}

func (s *Store) load() Mode {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, err := s.storage.Get(ctx, s.key)
	switch {
	case err == nil:
		var rec record
		if jerr := json.Unmarshal(raw, &rec); jerr == nil && rec.Mode.Valid() {
			return rec.Mode
		}
		s.logger.Warn().Str("key", s.key).Msg("ignoring malformed theme preference")
	case errors.Is(err, store.ErrNotFound):
	default:
		s.logger.Warn().Err(err).Str("key", s.key).Msg("failed to read theme preference")
	}

	mode := s.seed()
	s.persist(mode)
	s.logger.Info().Str("mode", mode.String()).Msg("seeded theme preference")
	return mode
}

func (s *Store) seed() Mode {
	if s.ambient == nil {
		return DefaultMode
	}
	prefersDark, ok := s.ambient()
	if !ok {
		return DefaultMode
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// persist writes mode through to storage. Failures are logged only.
func (s *Store) persist(mode Mode) {
	raw, err := json.Marshal(record{Mode: mode})
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to encode theme preference")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.storage.Put(ctx, s.key, raw); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("failed to persist theme preference")
	}
}

// Mode returns the active theme.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips the theme and returns the new value.
func (s *Store) Toggle() Mode {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	next := s.mode.Toggle()
	s.mode = next
	s.mu.Unlock()

	s.commit(next)
	return next
}

// Set makes mode the active theme.
func (s *Store) Set(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	s.commit(mode)
	return nil
}

// commit persists and notifies. Callers hold writeMu.
func (s *Store) commit(mode Mode) {
	s.persist(mode)

	s.mu.RLock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	s.logger.Debug().Str("mode", mode.String()).Int("subscribers", len(subs)).Msg("theme changed")
	for _, sub := range subs {
		sub.fn(mode)
	}
}

// Subscribe registers fn to be called after every mutation. fn runs on the
// mutating goroutine and must not call Toggle or Set. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Mode)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
