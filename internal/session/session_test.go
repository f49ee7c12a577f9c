package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func newTestManager(t *testing.T, transport contact.Transport) (*Manager, *fakeNow) {
	t.Helper()
	clock := &fakeNow{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := NewManager(func() *contact.Controller {
		return contact.NewController(transport)
	}, time.Minute)
	m.now = clock.Now
	t.Cleanup(m.Close)
	return m, clock
}

var instant = contact.TransportFunc(func(context.Context, contact.Fields) error { return nil })

func TestGetCreatesAndReuses(t *testing.T) {
	m, _ := newTestManager(t, instant)

	id, c1, created := m.Get("")
	require.True(t, created)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	again, c2, created := m.Get(id)
	assert.False(t, created)
	assert.Equal(t, id, again)
	assert.Same(t, c1, c2)
	assert.Equal(t, 1, m.Len())
}

func TestGetReplacesUnknownOrMalformedID(t *testing.T) {
	m, _ := newTestManager(t, instant)

	id, _, created := m.Get("not-a-uuid")
	assert.True(t, created)
	assert.NotEqual(t, "not-a-uuid", id)

	unknown := uuid.NewString()
	id, _, created = m.Get(unknown)
	assert.True(t, created)
	assert.NotEqual(t, unknown, id)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	m, clock := newTestManager(t, instant)

	oldID, oldCtrl, _ := m.Get("")
	clock.Advance(45 * time.Second)
	freshID, _, _ := m.Get("")
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())

	require.ErrorIs(t, oldCtrl.Update(contact.FieldName, "x"), contact.ErrClosed)

	_, _, created := m.Get(oldID)
	assert.True(t, created)
	_, _, created = m.Get(freshID)
	assert.False(t, created)
}

func TestSweepKeepsInFlightSubmissions(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	blocking := contact.TransportFunc(func(context.Context, contact.Fields) error {
		close(started)
		<-release
		return nil
	})
	m, clock := newTestManager(t, blocking)

	_, ctrl, _ := m.Get("")
	require.NoError(t, ctrl.Update(contact.FieldName, "Jane"))
	require.NoError(t, ctrl.Update(contact.FieldEmail, "jane@x.com"))
	require.NoError(t, ctrl.Update(contact.FieldSubject, "Hi"))
	require.NoError(t, ctrl.Update(contact.FieldMessage, "1234567890"))

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Submit(context.Background())
		done <- err
	}()
	<-started

	clock.Advance(time.Hour)
	assert.Zero(t, m.Sweep())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, m.Sweep())
}

func TestRunClosesSessionsOnShutdown(t *testing.T) {
	m, _ := newTestManager(t, instant)
	_, ctrl, _ := m.Get("")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Hour)
		close(done)
	}()
	cancel()
	<-done

	assert.Zero(t, m.Len())
	require.ErrorIs(t, ctrl.Update(contact.FieldName, "x"), contact.ErrClosed)
}
