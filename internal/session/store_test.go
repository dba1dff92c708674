package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillnest/skillnest/internal/api"
)

func TestNewStore(t *testing.T) {
	t.Run("creates directory with correct permissions", func(t *testing.T) {
		tmpDir := t.TempDir()
		sessionDir := filepath.Join(tmpDir, "session")

		store, err := NewStore(sessionDir)
		require.NoError(t, err)
		assert.NotNil(t, store)

		info, err := os.Stat(sessionDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	})

	t.Run("empty store loads an empty record", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		rec, err := store.Load()
		require.NoError(t, err)
		assert.True(t, rec.Empty())
	})
}

func TestStore_SaveLoad(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		saved := Record{
			User: &api.User{
				ID:        1,
				Role:      api.RoleStudent,
				Email:     "a@b.com",
				FirstName: "Amara",
				LastName:  "Okafor",
			},
			AccessToken:  "t1",
			RefreshToken: "r1",
		}
		require.NoError(t, store.Save(saved))

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("token files are private", func(t *testing.T) {
		tmpDir := t.TempDir()
		store, err := NewStore(tmpDir)
		require.NoError(t, err)

		require.NoError(t, store.Save(Record{AccessToken: "t1", RefreshToken: "r1"}))

		info, err := os.Stat(filepath.Join(tmpDir, "access_token"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("save without user removes cached profile", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(Record{
			User:        &api.User{ID: 1},
			AccessToken: "t1",
		}))
		require.NoError(t, store.Save(Record{AccessToken: "t2"}))

		rec, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, rec.User)
		assert.Equal(t, "t2", rec.AccessToken)
	})

	t.Run("unreadable user profile is dropped, tokens survive", func(t *testing.T) {
		tmpDir := t.TempDir()
		store, err := NewStore(tmpDir)
		require.NoError(t, err)

		require.NoError(t, store.Save(Record{AccessToken: "t1", RefreshToken: "r1"}))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "user.json"), []byte("{not json"), 0600))

		rec, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, rec.User)
		assert.Equal(t, "t1", rec.AccessToken)
		assert.Equal(t, "r1", rec.RefreshToken)
	})
}

func TestStore_SaveUser(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(Record{
		User:         &api.User{ID: 1, FirstName: "Old"},
		AccessToken:  "t1",
		RefreshToken: "r1",
	}))

	require.NoError(t, store.SaveUser(&api.User{ID: 1, FirstName: "New"}))

	rec, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, rec.User)
	assert.Equal(t, "New", rec.User.FirstName)
	assert.Equal(t, "t1", rec.AccessToken)
	assert.Equal(t, "r1", rec.RefreshToken)
}

func TestStore_Clear(t *testing.T) {
	t.Run("removes all keys as a unit", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Save(Record{
			User:         &api.User{ID: 1},
			AccessToken:  "t1",
			RefreshToken: "r1",
		}))
		require.NoError(t, store.Clear())

		rec, err := store.Load()
		require.NoError(t, err)
		assert.True(t, rec.Empty())
	})

	t.Run("idempotent", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())
	})
}
