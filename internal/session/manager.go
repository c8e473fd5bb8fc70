// Package session implements the auth session state machine: anonymous,
// authenticating, authenticated. It owns the token lifecycle and the
// current-user identity, persisting the bearer token through a
// credentials.Store and talking to the backend through the auth service.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khoi-stripe/danddy/internal/credentials"
	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/pkg/clock"
	"github.com/khoi-stripe/danddy/internal/services/auth"
)

// State is the session lifecycle state
type State string

// Session states
const (
	// Anonymous: no session; the only exits are Login and Register
	Anonymous State = "anonymous"
	// Authenticating: token obtained, profile fetch in flight
	Authenticating State = "authenticating"
	// Authenticated: token stored and current user known
	Authenticated State = "authenticated"
)

// Snapshot is an immutable view of the session handed to subscribers
type Snapshot struct {
	State       State
	CurrentUser *dnd5e.User
	// Error holds the last failure's display message, empty when the
	// last operation succeeded
	Error string
}

// Config holds the dependencies for the session manager
type Config struct {
	Auth        auth.Service
	Credentials credentials.Store
	// Clock defaults to the system clock; injected for expiry tests
	Clock clock.Clock
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Auth == nil {
		vb.RequiredField("Auth")
	}
	if c.Credentials == nil {
		vb.RequiredField("Credentials")
	}
	return vb.Build()
}

// Manager owns the session state machine
type Manager struct {
	auth   auth.Service
	creds  credentials.Store
	clock  clock.Clock
	logger *slog.Logger

	mu          sync.Mutex
	state       State
	currentUser *dnd5e.User
	lastError   string

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// New creates a new session manager in the Anonymous state
func New(cfg *Config) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		auth:   cfg.Auth,
		creds:  cfg.Credentials,
		clock:  clk,
		logger: logger,
		state:  Anonymous,
		subs:   make(map[int]func(Snapshot)),
	}, nil
}

// Snapshot returns the current session view
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// State returns the current lifecycle state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated user, nil when anonymous
func (m *Manager) CurrentUser() *dnd5e.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentUser
}

// Subscribe registers a callback invoked with a snapshot after every
// state change. The returned function unsubscribes.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// Register creates an account and immediately logs in with the same
// credentials. Registration alone never establishes a session. If the
// account is created but the follow-up login fails, the user exists
// server-side while the client stays Anonymous; the login error is
// surfaced.
func (m *Manager) Register(ctx context.Context, email, username, password string, role dnd5e.UserRole) error {
	if _, err := m.auth.Register(ctx, &auth.RegisterInput{
		Email:    email,
		Username: username,
		Password: password,
		Role:     role,
	}); err != nil {
		m.fail(err)
		return err
	}

	return m.Login(ctx, email, password)
}

// Login exchanges credentials for a token, persists it, then fetches
// the current-user profile. Only after the profile arrives does the
// state become Authenticated. If the profile fetch fails the persisted
// token is discarded again, so a credential never outlives its session.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	out, err := m.auth.Login(ctx, &auth.LoginInput{Email: email, Password: password})
	if err != nil {
		m.fail(err)
		return err
	}

	if err := m.creds.Save(out.AccessToken); err != nil {
		wrapped := errors.Wrap(err, "failed to persist token")
		m.fail(wrapped)
		return wrapped
	}

	m.setState(Authenticating, nil, "")

	me, err := m.auth.Me(ctx, &auth.MeInput{})
	if err != nil {
		if delErr := m.creds.Delete(); delErr != nil {
			m.logger.WarnContext(ctx, "failed to discard token after profile fetch failure", "error", delErr)
		}
		m.fail(err)
		return err
	}

	m.setState(Authenticated, me.User, "")
	return nil
}

// RestoreSession re-establishes a session from a previously stored
// token at process start. Any failure, including network failure,
// discards the token and resolves to Anonymous; the call always reaches
// a terminal state. A token whose exp claim is already past is
// discarded without a network round trip.
func (m *Manager) RestoreSession(ctx context.Context) error {
	token, ok := m.creds.Token()
	if !ok {
		m.setState(Anonymous, nil, "")
		return nil
	}

	if m.tokenExpired(token) {
		m.logger.DebugContext(ctx, "stored token expired, discarding")
		m.discardSession("")
		return nil
	}

	me, err := m.auth.Me(ctx, &auth.MeInput{})
	if err != nil {
		m.discardSession("")
		return err
	}

	m.setState(Authenticated, me.User, "")
	return nil
}

// Logout discards the token and cached identity. It always succeeds
// locally, regardless of server reachability.
func (m *Manager) Logout() {
	m.discardSession("")
}

// Invalidate forces the session back to Anonymous after an Unauthorized
// transport error observed elsewhere, e.g. by an entity store.
func (m *Manager) Invalidate() {
	m.discardSession("unauthorized - please log in again")
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Opaque or claimless
// tokens are passed through for the backend to judge.
func (m *Manager) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(m.clock.Now())
}

func (m *Manager) discardSession(message string) {
	if err := m.creds.Delete(); err != nil {
		m.logger.Warn("failed to discard token", "error", err)
	}
	m.setState(Anonymous, nil, message)
}

// fail records an error and reverts to Anonymous
func (m *Manager) fail(err error) {
	m.setState(Anonymous, nil, errors.GetMessage(err))
}

func (m *Manager) setState(state State, user *dnd5e.User, message string) {
	m.mu.Lock()
	m.state = state
	m.currentUser = user
	m.lastError = message
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		State:       m.state,
		CurrentUser: m.currentUser,
		Error:       m.lastError,
	}
}

func (m *Manager) notify(snapshot Snapshot) {
	m.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
