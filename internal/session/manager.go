package session

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/skillnest/skillnest/internal/api"
)

// Session is the client's current authentication state. Created empty,
// populated by Initialize/Login/Register, cleared by Logout.
type Session struct {
	User          *api.User
	AccessToken   string
	RefreshToken  string
	Authenticated bool
	Loading       bool
}

// HasRole reports whether the session's user holds one of the given roles.
// False when no user is present. Pure and side-effect free.
func (s Session) HasRole(roles ...api.Role) bool {
	if s.User == nil || s.User.Role == "" {
		return false
	}
	return slices.Contains(roles, s.User.Role)
}

// AuthGateway is the slice of the API gateway the session manager depends on.
type AuthGateway interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthPayload, error)
	Register(ctx context.Context, input api.RegisterInput) (*api.AuthPayload, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Manager owns the in-memory session and keeps it consistent with the durable
// store. It is the only writer of either. Callers are responsible for not
// issuing overlapping mutating calls; the manager provides no mutual
// exclusion of its own.
type Manager struct {
	store   *Store
	gateway AuthGateway
	session Session
}

// NewManager creates a session manager. The session starts in the loading
// state until Initialize runs.
func NewManager(store *Store, gateway AuthGateway) *Manager {
	return &Manager{
		store:   store,
		gateway: gateway,
		session: Session{Loading: true},
	}
}

// Initialize reconstitutes the session from the durable store. Runs once per
// process lifetime, before any route is authorized. A malformed stored token
// is recovered by falling back to the cached profile; the decoder is advisory,
// not authoritative. The loading flag is cleared exactly once, on every path.
func (m *Manager) Initialize() {
	defer func() { m.session.Loading = false }()

	rec, err := m.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load persisted session, starting anonymous")
		return
	}

	if rec.AccessToken == "" {
		return
	}

	user := rec.User
	claims, err := DecodeAccessToken(rec.AccessToken)
	if err != nil {
		// Fall back to the cached profile; the server will reject the
		// token if it is actually unusable.
		log.Warn().Err(err).Msg("stored access token did not decode, using cached profile")
	} else {
		user = claims.MergeUser(rec.User)
	}

	m.session.User = user
	m.session.AccessToken = rec.AccessToken
	m.session.RefreshToken = rec.RefreshToken
	m.session.Authenticated = true

	log.Debug().Bool("hasUser", user != nil).Msg("session restored from store")
}

// Login authenticates against the API. On success the in-memory session is
// set first, then persisted. On failure the session is left untouched and the
// server's error message is passed through verbatim, defaulting to a generic
// message when the server gives none.
func (m *Manager) Login(ctx context.Context, creds api.Credentials) (*api.AuthPayload, error) {
	payload, err := m.gateway.Login(ctx, creds)
	if err != nil {
		return nil, withDefaultMessage(err, "Login failed")
	}

	m.commit(payload)
	return payload, nil
}

// Register creates an account and seeds the session from the newly issued
// user and tokens. Same contract as Login.
func (m *Manager) Register(ctx context.Context, input api.RegisterInput) (*api.AuthPayload, error) {
	payload, err := m.gateway.Register(ctx, input)
	if err != nil {
		return nil, withDefaultMessage(err, "Registration failed")
	}

	m.commit(payload)
	return payload, nil
}

// Logout invalidates the refresh token server-side on a best-effort basis;
// a failed network call is logged and swallowed. The local session is reset
// and the store cleared regardless of the network outcome. Idempotent.
func (m *Manager) Logout(ctx context.Context) {
	defer func() {
		m.session = Session{}
		if err := m.store.Clear(); err != nil {
			log.Warn().Err(err).Msg("failed to clear session store")
		}
	}()

	if m.session.RefreshToken == "" {
		return
	}

	if err := m.gateway.Logout(ctx, m.session.RefreshToken); err != nil {
		log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}
}

// UpdateUser replaces the in-memory user and re-persists the cached profile.
// Tokens are untouched. Used after profile edits.
func (m *Manager) UpdateUser(user *api.User) {
	m.session.User = user
	if err := m.store.SaveUser(user); err != nil {
		log.Warn().Err(err).Msg("failed to persist updated user profile")
	}
}

// HasRole reports role membership for the current user.
func (m *Manager) HasRole(roles ...api.Role) bool {
	return m.session.HasRole(roles...)
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	return m.session
}

// Role returns the current user's role, empty when anonymous.
func (m *Manager) Role() api.Role {
	if m.session.User == nil {
		return ""
	}
	return m.session.User.Role
}

// AccessToken implements api.TokenSource.
func (m *Manager) AccessToken() string {
	return m.session.AccessToken
}

// commit applies a successful auth payload: memory first, then the durable
// mirror. A failed persist is logged but does not fail the operation; the
// next Initialize simply forces a re-login.
func (m *Manager) commit(payload *api.AuthPayload) {
	m.session.User = payload.User
	m.session.AccessToken = payload.Tokens.Access
	m.session.RefreshToken = payload.Tokens.Refresh
	m.session.Authenticated = true
	m.session.Loading = false

	rec := Record{
		User:         payload.User,
		AccessToken:  payload.Tokens.Access,
		RefreshToken: payload.Tokens.Refresh,
	}
	if err := m.store.Save(rec); err != nil {
		log.Warn().Err(err).Msg("failed to persist session")
	}
}

// withDefaultMessage fills in a fallback message on auth errors the server
// returned without a payload.
func withDefaultMessage(err error, msg string) error {
	var authErr *api.AuthError
	if errors.As(err, &authErr) && authErr.Message == "" {
		return &api.AuthError{Message: msg}
	}
	return err
}
