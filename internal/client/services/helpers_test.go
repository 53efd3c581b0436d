package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/client/clienttest"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/brewkeeper/internal/client/session"
)

func newStore(t *testing.T) (*session.Store, metadata.Repository) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := metadata.NewSQLiteRepository(db)
	return session.NewStore(repo), repo
}

func newAuth(t *testing.T, fc *clienttest.Fake) (*AuthService, metadata.Repository) {
	t.Helper()
	store, repo := newStore(t)
	return NewAuthService(fc, store, nil), repo
}

// loggedIn returns an AuthService already logged in as username.
func loggedIn(t *testing.T, fc *clienttest.Fake, username string) *AuthService {
	t.Helper()
	a, _ := newAuth(t, fc)
	_, err := a.Login(context.Background(), username, []byte("pw"))
	require.NoError(t, err)
	return a
}

type staticSession models.Session

func (s staticSession) Current() models.Session { return models.Session(s) }

var validForm = models.RecipeForm{
	Title:        "Pour-over",
	Description:  "Clean cup",
	Equipment:    []string{"Pour-over"},
	Ingredients:  []string{"15g coffee", "250g water"},
	Instructions: []string{"Bloom", "Pour"},
}
