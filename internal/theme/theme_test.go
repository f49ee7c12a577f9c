package theme

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/Zachkp/portfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore remembers every Put so tests can check write-through.
type recordingStore struct {
	store.Store
	mu     sync.Mutex
	writes []Mode
	putErr error
	getErr error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Store: store.NewMemory()}
}

func (r *recordingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.Store.Get(ctx, key)
}

func (r *recordingStore) Put(ctx context.Context, key string, value []byte) error {
	var rec record
	if err := json.Unmarshal(value, &rec); err == nil {
		r.mu.Lock()
		r.writes = append(r.writes, rec.Mode)
		r.mu.Unlock()
	}
	if r.putErr != nil {
		return r.putErr
	}
	return r.Store.Put(ctx, key, value)
}

func (r *recordingStore) Writes() []Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Mode(nil), r.writes...)
}

func ambient(prefersDark, ok bool) Ambient {
	return func() (bool, bool) { return prefersDark, ok }
}

func persisted(t *testing.T, s store.Store) Mode {
	t.Helper()
	raw, err := s.Get(context.Background(), DefaultKey)
	require.NoError(t, err)
	var rec record
	require.NoError(t, json.Unmarshal(raw, &rec))
	return rec.Mode
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Light ")
	require.NoError(t, err)
	assert.Equal(t, Light, m)

	_, err = ParseMode("sepia")
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestColdStartDefaultsToDarkWithoutAmbient(t *testing.T) {
	backing := store.NewMemory()
	s := New(backing)

	assert.Equal(t, Dark, s.Mode())
	assert.Equal(t, Dark, persisted(t, backing))
}

func TestColdStartUsesAmbientSignal(t *testing.T) {
	s := New(store.NewMemory(), WithAmbient(ambient(false, true)))
	assert.Equal(t, Light, s.Mode())

	s = New(store.NewMemory(), WithAmbient(ambient(true, true)))
	assert.Equal(t, Dark, s.Mode())

	s = New(store.NewMemory(), WithAmbient(ambient(false, false)))
	assert.Equal(t, Dark, s.Mode())
}

func TestPersistedValueWinsOverAmbient(t *testing.T) {
	backing := store.NewMemory()
	require.NoError(t, backing.Put(context.Background(), DefaultKey, []byte(`{"mode":"light"}`)))

	called := false
	s := New(backing, WithAmbient(func() (bool, bool) {
		called = true
		return true, true
	}))

	assert.Equal(t, Light, s.Mode())
	assert.False(t, called, "ambient signal consulted despite persisted value")
}

func TestSeedHappensOnce(t *testing.T) {
	backing := newRecordingStore()
	New(backing, WithAmbient(ambient(false, true)))
	require.Equal(t, []Mode{Light}, backing.Writes())

	// Second construction finds the seeded record; the ambient signal
	// flipping must not matter.
	s := New(backing, WithAmbient(ambient(true, true)))
	assert.Equal(t, Light, s.Mode())
	assert.Equal(t, []Mode{Light}, backing.Writes())
}

func TestMalformedEntryFallsBackToSeed(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":     `dark`,
		"unknown mode": `{"mode":"sepia"}`,
		"missing mode": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			backing := store.NewMemory()
			require.NoError(t, backing.Put(context.Background(), DefaultKey, []byte(raw)))

			s := New(backing, WithAmbient(ambient(false, true)))
			assert.Equal(t, Light, s.Mode())
			assert.Equal(t, Light, persisted(t, backing))
		})
	}
}

func TestReadErrorFallsBackToSeed(t *testing.T) {
	backing := newRecordingStore()
	backing.getErr = errors.New("disk on fire")

	s := New(backing)
	assert.Equal(t, Dark, s.Mode())
}

func TestToggleTwiceWritesThroughEachTime(t *testing.T) {
	backing := newRecordingStore()
	s := New(backing, WithAmbient(ambient(false, true)))
	require.Equal(t, Light, s.Mode())

	assert.Equal(t, Dark, s.Toggle())
	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, Light, s.Mode())

	// seed, intermediate, final
	assert.Equal(t, []Mode{Light, Dark, Light}, backing.Writes())
}

func TestSetPersistsAndRejectsInvalid(t *testing.T) {
	backing := newRecordingStore()
	s := New(backing)

	require.NoError(t, s.Set(Light))
	assert.Equal(t, Light, s.Mode())
	assert.Equal(t, Light, persisted(t, backing))

	err := s.Set(Mode("sepia"))
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, Light, s.Mode())
	assert.Equal(t, []Mode{Dark, Light}, backing.Writes())
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	backing := newRecordingStore()
	backing.putErr = errors.New("quota exceeded")

	s := New(backing)
	require.NotPanics(t, func() { s.Toggle() })
	assert.Equal(t, Light, s.Mode())
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	s := New(store.NewMemory())

	var seen []Mode
	var current []Mode
	cancel := s.Subscribe(func(m Mode) {
		seen = append(seen, m)
		current = append(current, s.Mode())
	})

	s.Toggle()
	require.NoError(t, s.Set(Light))
	s.Toggle()

	assert.Equal(t, []Mode{Light, Light, Dark}, seen)
	assert.Equal(t, seen, current)

	cancel()
	cancel()
	s.Toggle()
	assert.Len(t, seen, 3)
}

func TestSubscribersCalledInRegistrationOrder(t *testing.T) {
	s := New(store.NewMemory())

	var order []string
	s.Subscribe(func(Mode) { order = append(order, "first") })
	cancelSecond := s.Subscribe(func(Mode) { order = append(order, "second") })
	s.Subscribe(func(Mode) { order = append(order, "third") })

	s.Toggle()
	assert.Equal(t, []string{"first", "second", "third"}, order)

	order = nil
	cancelSecond()
	s.Toggle()
	assert.Equal(t, []string{"first", "third"}, order)
}

func TestConcurrentTogglesStayConsistent(t *testing.T) {
	backing := store.NewMemory()
	s := New(backing)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle()
		}()
	}
	wg.Wait()

	// An even number of flips lands back on the seed.
	assert.Equal(t, Dark, s.Mode())
	assert.Equal(t, Dark, persisted(t, backing))
}

func TestWithKey(t *testing.T) {
	backing := store.NewMemory()
	New(backing, WithKey("prefs/theme"))

	_, err := backing.Get(context.Background(), "prefs/theme")
	require.NoError(t, err)
	_, err = backing.Get(context.Background(), DefaultKey)
	require.ErrorIs(t, err, store.ErrNotFound)
}
