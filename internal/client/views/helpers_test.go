package views

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
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
	"github.com/dmitrijs2005/brewkeeper/internal/client/session"
)

type alice struct{}

func (alice) Current() models.Session { return models.Session{Username: "alice", Token: "t"} }

type fixture struct {
	fc  *clienttest.Fake
	nav *routes.Recorder
}

func newFixture() *fixture {
	return &fixture{fc: &clienttest.Fake{}, nav: &routes.Recorder{}}
}

func (f *fixture) recipes() *services.RecipeService {
	return services.NewRecipeService(f.fc, alice{})
}

func (f *fixture) auth(t *testing.T) *services.AuthService {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "views.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return services.NewAuthService(f.fc, session.NewStore(metadata.NewSQLiteRepository(db)), nil)
}

var sampleForm = models.RecipeForm{
	Title:        "V60",
	Description:  "Bright",
	Equipment:    []string{"Pour-over"},
	Ingredients:  []string{"15g coffee"},
	Instructions: []string{"Pour"},
}

func masterRecipe(id string) models.Recipe {
	return models.Recipe{
		ID: id, Title: "Master", Description: "d", Equipment: []string{"Pour-over"},
		Ingredients: []string{"i"}, Instructions: []string{"s"}, IsMasterRecipe: true,
	}
}

func personalRecipe(id string) models.Recipe {
	r := masterRecipe(id)
	r.Title = "Mine"
	r.IsMasterRecipe = false
	return r
}
