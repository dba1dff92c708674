package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillnest/skillnest/internal/api"
)

type fakeGateway struct {
	loginPayload    *api.AuthPayload
	loginErr        error
	registerPayload *api.AuthPayload
	registerErr     error
	logoutErr       error
	logoutCalls     int
	lastRefresh     string
}

func (f *fakeGateway) Login(_ context.Context, _ api.Credentials) (*api.AuthPayload, error) {
	return f.loginPayload, f.loginErr
}

func (f *fakeGateway) Register(_ context.Context, _ api.RegisterInput) (*api.AuthPayload, error) {
	return f.registerPayload, f.registerErr
}

func (f *fakeGateway) Logout(_ context.Context, refreshToken string) error {
	f.logoutCalls++
	f.lastRefresh = refreshToken
	return f.logoutErr
}

func newTestManager(t *testing.T, gateway AuthGateway) (*Manager, *Store) {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(store, gateway), store
}

func studentPayload() *api.AuthPayload {
	return &api.AuthPayload{
		User: &api.User{
			ID:        1,
			Role:      api.RoleStudent,
			Email:     "amara@example.com",
			FirstName: "Amara",
			LastName:  "Okafor",
		},
		Tokens: api.TokenPair{Access: "access-1", Refresh: "refresh-1"},
	}
}

func TestManager_Initialize(t *testing.T) {
	t.Run("empty store stays anonymous", func(t *testing.T) {
		mgr, _ := newTestManager(t, &fakeGateway{})

		assert.True(t, mgr.Current().Loading)
		mgr.Initialize()

		s := mgr.Current()
		assert.False(t, s.Loading)
		assert.False(t, s.Authenticated)
		assert.Nil(t, s.User)
	})

	t.Run("restores session from well formed token", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeGateway{})

		token := signToken(t, &Claims{UserID: 1, Role: api.RoleStudent})
		require.NoError(t, store.Save(Record{
			User:         &api.User{ID: 1, FirstName: "Amara"},
			AccessToken:  token,
			RefreshToken: "refresh-1",
		}))

		mgr.Initialize()

		s := mgr.Current()
		assert.False(t, s.Loading)
		assert.True(t, s.Authenticated)
		require.NotNil(t, s.User)
		assert.Equal(t, int64(1), s.User.ID)
		assert.Equal(t, api.RoleStudent, s.User.Role)
		assert.Equal(t, "Amara", s.User.FirstName)
		assert.Equal(t, token, s.AccessToken)
		assert.Equal(t, "refresh-1", s.RefreshToken)
	})

	t.Run("malformed token falls back to cached profile", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeGateway{})

		require.NoError(t, store.Save(Record{
			User:         &api.User{ID: 1, FirstName: "Amara"},
			AccessToken:  "not-a-jwt",
			RefreshToken: "refresh-1",
		}))

		mgr.Initialize()

		s := mgr.Current()
		assert.True(t, s.Authenticated)
		require.NotNil(t, s.User)
		assert.Equal(t, "Amara", s.User.FirstName)
		assert.Equal(t, "not-a-jwt", s.AccessToken)
	})

	t.Run("token without cached profile", func(t *testing.T) {
		mgr, store := newTestManager(t, &fakeGateway{})

		token := signToken(t, &Claims{UserID: 3, Role: api.RoleAdmin, Email: "root@example.com"})
		require.NoError(t, store.Save(Record{AccessToken: token}))

		mgr.Initialize()

		s := mgr.Current()
		assert.True(t, s.Authenticated)
		require.NotNil(t, s.User)
		assert.Equal(t, int64(3), s.User.ID)
		assert.Equal(t, api.RoleAdmin, s.User.Role)
		assert.Equal(t, "root@example.com", s.User.Email)
	})
}

func TestManager_Login(t *testing.T) {
	t.Run("success populates session and store", func(t *testing.T) {
		gateway := &fakeGateway{loginPayload: studentPayload()}
		mgr, store := newTestManager(t, gateway)
		mgr.Initialize()

		payload, err := mgr.Login(context.Background(), api.Credentials{
			Email:    "amara@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		require.NotNil(t, payload)

		s := mgr.Current()
		assert.True(t, s.Authenticated)
		assert.Equal(t, "access-1", s.AccessToken)
		assert.Equal(t, "refresh-1", s.RefreshToken)
		require.NotNil(t, s.User)
		assert.Equal(t, "Amara", s.User.FirstName)

		rec, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, "access-1", rec.AccessToken)
		assert.Equal(t, "refresh-1", rec.RefreshToken)
		require.NotNil(t, rec.User)
		assert.Equal(t, "Amara", rec.User.FirstName)
	})

	t.Run("server message passes through verbatim", func(t *testing.T) {
		gateway := &fakeGateway{loginErr: &api.AuthError{Message: "Invalid credentials"}}
		mgr, store := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())

		s := mgr.Current()
		assert.False(t, s.Authenticated)
		assert.Empty(t, s.AccessToken)

		rec, err := store.Load()
		require.NoError(t, err)
		assert.True(t, rec.Empty())
	})

	t.Run("empty server message gets default", func(t *testing.T) {
		gateway := &fakeGateway{loginErr: &api.AuthError{}}
		mgr, _ := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, "Login failed", err.Error())
	})

	t.Run("non-auth errors are untouched", func(t *testing.T) {
		netErr := &api.NetworkError{Err: errors.New("dial tcp: refused")}
		gateway := &fakeGateway{loginErr: netErr}
		mgr, _ := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"})
		require.Error(t, err)

		var gotNet *api.NetworkError
		assert.ErrorAs(t, err, &gotNet)
	})
}

func TestManager_Register(t *testing.T) {
	t.Run("success commits session", func(t *testing.T) {
		gateway := &fakeGateway{registerPayload: studentPayload()}
		mgr, _ := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Register(context.Background(), api.RegisterInput{
			Email:           "amara@example.com",
			Password:        "correct horse",
			PasswordConfirm: "correct horse",
			FirstName:       "Amara",
			LastName:        "Okafor",
		})
		require.NoError(t, err)
		assert.True(t, mgr.Current().Authenticated)
	})

	t.Run("empty server message gets default", func(t *testing.T) {
		gateway := &fakeGateway{registerErr: &api.AuthError{}}
		mgr, _ := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Register(context.Background(), api.RegisterInput{})
		require.Error(t, err)
		assert.Equal(t, "Registration failed", err.Error())
	})
}

func TestManager_Logout(t *testing.T) {
	t.Run("clears session and store", func(t *testing.T) {
		gateway := &fakeGateway{loginPayload: studentPayload()}
		mgr, store := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"})
		require.NoError(t, err)

		mgr.Logout(context.Background())

		s := mgr.Current()
		assert.False(t, s.Authenticated)
		assert.Nil(t, s.User)
		assert.Empty(t, s.AccessToken)

		rec, err := store.Load()
		require.NoError(t, err)
		assert.True(t, rec.Empty())

		assert.Equal(t, 1, gateway.logoutCalls)
		assert.Equal(t, "refresh-1", gateway.lastRefresh)
	})

	t.Run("server failure still clears locally", func(t *testing.T) {
		gateway := &fakeGateway{
			loginPayload: studentPayload(),
			logoutErr:    &api.NetworkError{Err: errors.New("dial tcp: refused")},
		}
		mgr, store := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"})
		require.NoError(t, err)

		mgr.Logout(context.Background())

		assert.False(t, mgr.Current().Authenticated)
		rec, err := store.Load()
		require.NoError(t, err)
		assert.True(t, rec.Empty())
	})

	t.Run("idempotent, server called once", func(t *testing.T) {
		gateway := &fakeGateway{loginPayload: studentPayload()}
		mgr, _ := newTestManager(t, gateway)
		mgr.Initialize()

		_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"})
		require.NoError(t, err)

		mgr.Logout(context.Background())
		mgr.Logout(context.Background())

		assert.Equal(t, 1, gateway.logoutCalls)
		assert.False(t, mgr.Current().Authenticated)
	})
}

func TestManager_UpdateUser(t *testing.T) {
	gateway := &fakeGateway{loginPayload: studentPayload()}
	mgr, store := newTestManager(t, gateway)
	mgr.Initialize()

	_, err := mgr.Login(context.Background(), api.Credentials{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	mgr.UpdateUser(&api.User{ID: 1, Role: api.RoleStudent, FirstName: "Renamed"})

	s := mgr.Current()
	require.NotNil(t, s.User)
	assert.Equal(t, "Renamed", s.User.FirstName)
	assert.Equal(t, "access-1", s.AccessToken)

	rec, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec.User)
	assert.Equal(t, "Renamed", rec.User.FirstName)
	assert.Equal(t, "access-1", rec.AccessToken)
}

func TestManager_HasRole(t *testing.T) {
	mgr, store := newTestManager(t, &fakeGateway{})
	token := signToken(t, &Claims{UserID: 1, Role: api.RoleInstructor})
	require.NoError(t, store.Save(Record{AccessToken: token}))
	mgr.Initialize()

	assert.True(t, mgr.HasRole(api.RoleInstructor))
	assert.True(t, mgr.HasRole(api.RoleInstructor, api.RoleAdmin))
	assert.False(t, mgr.HasRole(api.RoleAdmin))
	assert.False(t, mgr.HasRole())
	assert.Equal(t, api.RoleInstructor, mgr.Role())
	assert.Equal(t, token, mgr.AccessToken())
}

func TestSession_HasRole(t *testing.T) {
	t.Run("no user", func(t *testing.T) {
		assert.False(t, Session{}.HasRole(api.RoleStudent))
	})

	t.Run("empty role", func(t *testing.T) {
		s := Session{User: &api.User{}}
		assert.False(t, s.HasRole(api.RoleStudent))
	})

	t.Run("match", func(t *testing.T) {
		s := Session{User: &api.User{Role: api.RoleStudent}}
		assert.True(t, s.HasRole(api.RoleStudent))
		assert.False(t, s.HasRole(api.RoleAdmin))
	})
}
