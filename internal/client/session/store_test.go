package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/repositories/metadata"
)

func newSQLiteRepo(t *testing.T) *metadata.SQLiteRepository {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return metadata.NewSQLiteRepository(db)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

// failingRepo fails every write.
type failingRepo struct {
	metadata.Repository
	err error
}

func (f failingRepo) Set(context.Context, string, []byte) error        { return f.err }
func (f failingRepo) SetMany(context.Context, map[string][]byte) error { return f.err }
func (f failingRepo) Clear(context.Context) error                      { return f.err }
func (f failingRepo) List(context.Context) (map[string][]byte, error)  { return nil, f.err }

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	s := NewStore(repo)
	require.NoError(t, s.Save(ctx, "alice", "opaque-token"))
	require.NoError(t, s.SetAdmin(ctx, true))

	fresh := NewStore(repo)
	assert.Equal(t, models.Session{}, fresh.Snapshot(), "anonymous until loaded")

	sess, err := fresh.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{Username: "alice", Token: "opaque-token", IsAdmin: true}, sess)
	assert.Equal(t, "opaque-token", fresh.Token())
}

func TestStore_SaveResetsAdminFlag(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newSQLiteRepo(t))

	require.NoError(t, s.Save(ctx, "root", "t1"))
	require.NoError(t, s.SetAdmin(ctx, true))
	require.NoError(t, s.Save(ctx, "alice", "t2"))

	assert.Equal(t, models.Session{Username: "alice", Token: "t2"}, s.Snapshot())
}

func TestStore_ClearWipesEverything(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	s := NewStore(repo)

	require.NoError(t, s.Save(ctx, "alice", "tok"))
	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, models.StateAnonymous, s.Snapshot().State())
	m, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestStore_LoadDropsExpiredJWT(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	s := NewStore(repo)
	s.now = func() time.Time { return now }
	require.NoError(t, s.Save(ctx, "alice", signedToken(t, now.Add(-time.Minute))))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())

	m, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestStore_LoadKeepsValidJWT(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	s := NewStore(newSQLiteRepo(t))
	s.now = func() time.Time { return now }
	tok := signedToken(t, now.Add(time.Hour))
	require.NoError(t, s.Save(ctx, "alice", tok))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, tok, sess.Token)
}

func TestStore_LoadWithoutIdentityIsAnonymous(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	require.NoError(t, repo.Set(ctx, "token", []byte("orphan")))

	sess, err := NewStore(repo).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, sess)
}

func TestStore_FailedWritesKeepSnapshot(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	s := NewStore(failingRepo{err: boom})

	require.ErrorIs(t, s.Save(ctx, "alice", "tok"), boom)
	assert.Equal(t, models.Session{}, s.Snapshot())

	require.ErrorIs(t, s.SetAdmin(ctx, true), boom)
	assert.False(t, s.Snapshot().IsAdmin)

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, boom)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, TokenExpired("", now))
	assert.False(t, TokenExpired("not-a-jwt", now))
	assert.False(t, TokenExpired(signedToken(t, now.Add(time.Hour)), now))
	assert.True(t, TokenExpired(signedToken(t, now.Add(-time.Hour)), now))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
	require.NoError(t, err)
	assert.False(t, TokenExpired(noExp, now))
}
