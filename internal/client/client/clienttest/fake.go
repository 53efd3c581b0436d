// Package clienttest provides an in-memory client.Client for tests.
package clienttest

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

// Fake returns the configured values and records every call. It is safe for
// concurrent use; configure it before handing it out.
type Fake struct {
	mu    sync.Mutex
	calls []string

	// Hook runs at the start of every call, outside the lock.
	Hook func(ctx context.Context, method string)

	PingErr     error
	RegisterErr error

	LoginToken string
	LoginErr   error

	RoleRet string
	RoleErr error

	Catalog            []string
	CatalogErr         error
	Equipment          []string
	EquipmentErr       error
	SaveEquipmentErr   error
	LastSavedEquipment []string

	Recipes           []models.Recipe
	RecipesErr        error
	Recommended       []models.Recipe
	RecommendedErr    error
	LastListEquipment []string

	RecipeByID map[string]models.Recipe
	GetErr     error

	CreateID  string
	CreateErr error
	UpdateErr error
	DeleteErr error
	CloneID   string
	CloneErr  error

	RateErr       error
	NoteErr       error
	DeleteNoteErr error

	MasterRecipes []models.Recipe
	MasterErr     error

	LastUsername  string
	LastPassword  string
	LastID        string
	LastForm      models.RecipeForm
	LastRating    int
	LastNote      string
	LastNoteIndex int
}

var _ client.Client = (*Fake)(nil)

func (f *Fake) record(ctx context.Context, method string, fn func()) {
	if f.Hook != nil {
		f.Hook(ctx, method)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method)
	if fn != nil {
		fn()
	}
}

// Calls returns the method names in call order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *Fake) Called(method string) bool {
	return f.CallCount(method) > 0
}

func (f *Fake) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *Fake) Ping(ctx context.Context) error {
	f.record(ctx, "Ping", nil)
	return f.PingErr
}

func (f *Fake) Register(ctx context.Context, username, password string) error {
	f.record(ctx, "Register", func() { f.LastUsername, f.LastPassword = username, password })
	return f.RegisterErr
}

func (f *Fake) Login(ctx context.Context, username, password string) (string, error) {
	f.record(ctx, "Login", func() { f.LastUsername, f.LastPassword = username, password })
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.LoginToken, nil
}

func (f *Fake) Role(ctx context.Context, username string) (string, error) {
	f.record(ctx, "Role", func() { f.LastUsername = username })
	return f.RoleRet, f.RoleErr
}

func (f *Fake) EquipmentCatalog(ctx context.Context) ([]string, error) {
	f.record(ctx, "EquipmentCatalog", nil)
	return slices.Clone(f.Catalog), f.CatalogErr
}

func (f *Fake) UserEquipment(ctx context.Context, username string) ([]string, error) {
	f.record(ctx, "UserEquipment", func() { f.LastUsername = username })
	return slices.Clone(f.Equipment), f.EquipmentErr
}

func (f *Fake) SaveUserEquipment(ctx context.Context, username string, items []string) ([]string, error) {
	f.record(ctx, "SaveUserEquipment", func() {
		f.LastUsername = username
		f.LastSavedEquipment = slices.Clone(items)
	})
	if f.SaveEquipmentErr != nil {
		return nil, f.SaveEquipmentErr
	}
	return slices.Clone(items), nil
}

func (f *Fake) ListRecipes(ctx context.Context, username string, equipment []string) ([]models.Recipe, error) {
	f.record(ctx, "ListRecipes", func() {
		f.LastUsername = username
		f.LastListEquipment = slices.Clone(equipment)
	})
	return slices.Clone(f.Recipes), f.RecipesErr
}

func (f *Fake) Recommendations(ctx context.Context, username string, equipment []string) ([]models.Recipe, error) {
	f.record(ctx, "Recommendations", func() { f.LastUsername = username })
	return slices.Clone(f.Recommended), f.RecommendedErr
}

func (f *Fake) GetRecipe(ctx context.Context, username, id string) (models.Recipe, error) {
	f.record(ctx, "GetRecipe", func() { f.LastUsername, f.LastID = username, id })
	if f.GetErr != nil {
		return models.Recipe{}, f.GetErr
	}
	r, ok := f.RecipeByID[id]
	if !ok {
		return models.Recipe{}, &client.APIError{Op: "get recipe", Status: 404, Message: "Recipe not found", Err: client.ErrNotFound}
	}
	return r, nil
}

func (f *Fake) CreateRecipe(ctx context.Context, username string, form models.RecipeForm) (string, error) {
	f.record(ctx, "CreateRecipe", func() { f.LastUsername, f.LastForm = username, form })
	return f.CreateID, f.CreateErr
}

func (f *Fake) UpdateRecipe(ctx context.Context, username, id string, form models.RecipeForm) error {
	f.record(ctx, "UpdateRecipe", func() { f.LastUsername, f.LastID, f.LastForm = username, id, form })
	return f.UpdateErr
}

func (f *Fake) DeleteRecipe(ctx context.Context, username, id string) error {
	f.record(ctx, "DeleteRecipe", func() { f.LastUsername, f.LastID = username, id })
	return f.DeleteErr
}

func (f *Fake) CloneRecipe(ctx context.Context, username, id string, form models.RecipeForm) (string, error) {
	f.record(ctx, "CloneRecipe", func() { f.LastUsername, f.LastID, f.LastForm = username, id, form })
	if f.CloneErr != nil {
		return "", f.CloneErr
	}
	return f.CloneID, nil
}

func (f *Fake) RateRecipe(ctx context.Context, username, id string, stars int) error {
	f.record(ctx, "RateRecipe", func() { f.LastUsername, f.LastID, f.LastRating = username, id, stars })
	return f.RateErr
}

func (f *Fake) AddNote(ctx context.Context, username, id, note string) error {
	f.record(ctx, "AddNote", func() { f.LastUsername, f.LastID, f.LastNote = username, id, note })
	return f.NoteErr
}

func (f *Fake) DeleteNote(ctx context.Context, username, id string, index int) error {
	f.record(ctx, "DeleteNote", func() { f.LastUsername, f.LastID, f.LastNoteIndex = username, id, index })
	return f.DeleteNoteErr
}

func (f *Fake) ListMasterRecipes(ctx context.Context, username string) ([]models.Recipe, error) {
	f.record(ctx, "ListMasterRecipes", func() { f.LastUsername = username })
	return slices.Clone(f.MasterRecipes), f.MasterErr
}

func (f *Fake) CreateMasterRecipe(ctx context.Context, username string, form models.RecipeForm) (string, error) {
	f.record(ctx, "CreateMasterRecipe", func() { f.LastUsername, f.LastForm = username, form })
	return f.CreateID, f.CreateErr
}

func (f *Fake) UpdateMasterRecipe(ctx context.Context, username, id string, form models.RecipeForm) error {
	f.record(ctx, "UpdateMasterRecipe", func() { f.LastUsername, f.LastID, f.LastForm = username, id, form })
	return f.UpdateErr
}

func (f *Fake) DeleteMasterRecipe(ctx context.Context, username, id string) error {
	f.record(ctx, "DeleteMasterRecipe", func() { f.LastUsername, f.LastID = username, id })
	return f.DeleteErr
}
