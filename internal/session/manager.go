// Package session owns the client-side session lifecycle: token, role and
// login timestamp held in a key-value store, a single-shot expiry timer,
// and restore-on-start semantics.
package session

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

// State of the session lifecycle.
type State int

const (
	// Anonymous means no valid session is held.
	Anonymous State = iota
	// Authenticated means a token, role and fresh login timestamp are held.
	Authenticated
)

// Storage keys. All three are written on login and cleared together on
// logout or expiry.
const (
	keyRole      = "role"
	keyToken     = "token"
	keyLoginTime = "loginTime"
)

// ErrNotAuthenticated is returned by Require when no valid session is held.
var ErrNotAuthenticated = errors.New("not authenticated")

// Manager drives the Anonymous/Authenticated state machine. Only one
// expiry timer is ever live; re-login or re-evaluation always clears the
// previous timer before arming a new one.
type Manager struct {
	mu    sync.Mutex
	store Store
	ttl   time.Duration

	state    State
	timer    *time.Timer
	deadline time.Time

	// now is swappable in tests.
	now func() time.Time
	// onExpire, if set, runs when the expiry timer fires (after logout).
	onExpire func()
}

// NewManager creates a Manager over the given store with the given session
// validity window (24h for this system).
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// OnExpire registers a callback invoked after the expiry timer logs the
// session out.
func (m *Manager) OnExpire(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = fn
}

// Restore evaluates stored session fields on application start. A stored
// role, token and a login timestamp newer than the validity window restore
// Authenticated state and re-arm the timer for the remaining duration;
// anything else clears the session and forces Anonymous.
func (m *Manager) Restore() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	role, okRole := m.store.Get(keyRole)
	_, okToken := m.store.Get(keyToken)
	rawTime, okTime := m.store.Get(keyLoginTime)
	if !okRole || !okToken || !okTime || role != "admin" {
		m.clearLocked()
		return m.state
	}

	loginMillis, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		m.clearLocked()
		return m.state
	}

	elapsed := m.now().Sub(time.UnixMilli(loginMillis))
	if elapsed >= m.ttl {
		m.clearLocked()
		return m.state
	}

	m.state = Authenticated
	m.armLocked(m.ttl - elapsed)
	return m.state
}

// Login transitions to Authenticated: the token, role and current login
// timestamp are persisted and the expiry timer is armed for the full
// validity window.
func (m *Manager) Login(token, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if err := m.store.Set(keyToken, token); err != nil {
		return err
	}
	if err := m.store.Set(keyRole, role); err != nil {
		return err
	}
	if err := m.store.Set(keyLoginTime, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		return err
	}

	m.state = Authenticated
	m.armLocked(m.ttl)
	return nil
}

// Logout transitions to Anonymous: the timer is cancelled and all stored
// session fields are cleared together.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the held session token, if Authenticated.
func (m *Manager) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated {
		return "", false
	}
	return m.store.Get(keyToken)
}

// Require gates protected operations: it returns the token when a valid
// session is held and ErrNotAuthenticated otherwise.
func (m *Manager) Require() (string, error) {
	token, ok := m.Token()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// ExpiresIn reports the remaining validity of the armed timer. Zero when
// Anonymous.
func (m *Manager) ExpiresIn() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Authenticated {
		return 0
	}
	return m.deadline.Sub(m.now())
}

// armLocked schedules the single expiry timer, replacing any previous one.
// Callers hold m.mu.
func (m *Manager) armLocked(d time.Duration) {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.deadline = m.now().Add(d)
	m.timer = time.AfterFunc(d, func() {
		m.mu.Lock()
		m.clearLocked()
		fn := m.onExpire
		m.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

// clearLocked cancels the timer and wipes all session fields. Callers hold m.mu.
func (m *Manager) clearLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.deadline = time.Time{}
	_ = m.store.Delete(keyRole)
	_ = m.store.Delete(keyToken)
	_ = m.store.Delete(keyLoginTime)
	m.state = Anonymous
}
