package app

import (
	"encoding/json"
	"log/slog"
	"sync"

	"biologia-quiz-client/internal/domain"
)

// Store abstracts the durable key-value store backing one browser profile
// (in-memory, JSON file, Redis). Absence is a boolean, never an error:
// implementations log and swallow backend failures.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Clear()
}

// Router receives navigation side effects, keeping the session layer
// decoupled from whatever renders the views.
type Router interface {
	NavigateTo(route string)
}

// Routes exposed to the user. Guards redirect here when a credential is missing.
const (
	RouteEntry          = "/"
	RouteQuiz           = "/questions"
	RouteThankYou       = "/thank-you"
	RouteAdminLogin     = "/admin/login"
	RouteAdminDashboard = "/admin/dashboard"
)

// Durable storage keys. Each key is owned by exactly one write path.
const (
	keyToken      = "auth_token"
	keyAdminToken = "admin_token"
	keyUserData   = "user_data"
	keyScore      = "user_score"
)

// SessionManager is the single source of truth for the two independent
// credentials (end-user quiz token, admin token) plus the cached profile and
// last score. Both credentials expose a reactive boolean signal consumed by
// route guards.
type SessionManager struct {
	store  Store
	router Router
	logger *slog.Logger

	user  *signal
	admin *signal
}

// NewSessionManager wires a manager over the given store. The signals are
// initialized from the persisted state, not assumed false.
func NewSessionManager(store Store, router Router, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &SessionManager{
		store:  store,
		router: router,
		logger: logger,
	}
	m.user = newSignal(m.HasToken())
	m.admin = newSignal(m.HasAdminToken())
	return m
}

// SetToken persists the end-user token and flips the user signal.
func (m *SessionManager) SetToken(token string) {
	m.store.Set(keyToken, token)
	m.user.set(token != "")
}

// Token returns the persisted user token, or false if never set or cleared.
func (m *SessionManager) Token() (string, bool) {
	return m.present(keyToken)
}

// HasToken reports whether a user token is currently persisted. No expiry
// check is done; validity is judged by the backend rejecting requests.
func (m *SessionManager) HasToken() bool {
	_, ok := m.Token()
	return ok
}

// SetAdminToken persists the admin token and flips the admin signal.
func (m *SessionManager) SetAdminToken(token string) {
	m.store.Set(keyAdminToken, token)
	m.admin.set(token != "")
}

// AdminToken returns the persisted admin token, or false if absent.
func (m *SessionManager) AdminToken() (string, bool) {
	return m.present(keyAdminToken)
}

// HasAdminToken reports whether an admin token is currently persisted.
func (m *SessionManager) HasAdminToken() bool {
	_, ok := m.AdminToken()
	return ok
}

// SetUserData caches the registration profile.
func (m *SessionManager) SetUserData(profile domain.UserProfile) {
	m.setJSON(keyUserData, profile)
}

// UserData returns the cached profile. Malformed stored content is treated
// as absent, never raised.
func (m *SessionManager) UserData() (domain.UserProfile, bool) {
	var profile domain.UserProfile
	if !m.getJSON(keyUserData, &profile) {
		return domain.UserProfile{}, false
	}
	return profile, true
}

// SetScore caches the result of the most recent submission.
func (m *SessionManager) SetScore(result domain.ScoreResult) {
	m.setJSON(keyScore, result)
}

// Score returns the cached last result, or false if absent or malformed.
func (m *SessionManager) Score() (domain.ScoreResult, bool) {
	var result domain.ScoreResult
	if !m.getJSON(keyScore, &result) {
		return domain.ScoreResult{}, false
	}
	return result, true
}

// Logout clears the user credential space (token, profile, score), flips the
// user signal and navigates to the entry route. The admin credential is
// untouched.
func (m *SessionManager) Logout() {
	m.store.Delete(keyToken)
	m.store.Delete(keyUserData)
	m.store.Delete(keyScore)
	m.user.set(false)
	m.navigate(RouteEntry)
}

// AdminLogout clears only the admin token, flips the admin signal and
// navigates to the admin login route.
func (m *SessionManager) AdminLogout() {
	m.store.Delete(keyAdminToken)
	m.admin.set(false)
	m.navigate(RouteAdminLogin)
}

// ClearAll wipes every key in the store and flips both signals. This is the
// only operation that destroys user and admin state at once; it runs when the
// user returns home after seeing a result.
func (m *SessionManager) ClearAll() {
	m.store.Clear()
	m.user.set(false)
	m.admin.set(false)
}

// SubscribeUser returns a channel of user-authenticated updates. The current
// value is delivered first. The caller must invoke cancel to avoid leaks.
func (m *SessionManager) SubscribeUser() (<-chan bool, func()) {
	return m.user.subscribe()
}

// SubscribeAdmin returns a channel of admin-authenticated updates, current
// value first.
func (m *SessionManager) SubscribeAdmin() (<-chan bool, func()) {
	return m.admin.subscribe()
}

func (m *SessionManager) present(key string) (string, bool) {
	value, ok := m.store.Get(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (m *SessionManager) setJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("failed to serialize session value", "key", key, "error", err)
		return
	}
	m.store.Set(key, string(data))
}

func (m *SessionManager) getJSON(key string, out any) bool {
	raw, ok := m.store.Get(key)
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		m.logger.Warn("malformed session value, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

func (m *SessionManager) navigate(route string) {
	if m.router != nil {
		m.router.NavigateTo(route)
	}
}

// signal is an independently observable boolean cell. User and admin sessions
// are orthogonal, so each gets its own.
type signal struct {
	mu          sync.Mutex
	value       bool
	subscribers map[chan bool]struct{}
}

func newSignal(initial bool) *signal {
	return &signal{
		value:       initial,
		subscribers: make(map[chan bool]struct{}),
	}
}

func (s *signal) set(value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	for ch := range s.subscribers {
		select {
		case ch <- value:
		default:
			// Drop the stale update so a slow subscriber never blocks the mutation.
			select {
			case <-ch:
			default:
			}
			ch <- value
		}
	}
}

func (s *signal) subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.value
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}
