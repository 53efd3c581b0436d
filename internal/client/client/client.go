package client

import (
	"context"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

// Client is the recipe API contract, one method per endpoint. username is
// the caller's identity; each method sends it where its endpoint expects it.
type Client interface {
	Ping(ctx context.Context) error

	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (token string, err error)
	Role(ctx context.Context, username string) (string, error)

	EquipmentCatalog(ctx context.Context) ([]string, error)
	UserEquipment(ctx context.Context, username string) ([]string, error)
	SaveUserEquipment(ctx context.Context, username string, items []string) ([]string, error)

	ListRecipes(ctx context.Context, username string, equipment []string) ([]models.Recipe, error)
	Recommendations(ctx context.Context, username string, equipment []string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, username, id string) (models.Recipe, error)
	CreateRecipe(ctx context.Context, username string, form models.RecipeForm) (string, error)
	UpdateRecipe(ctx context.Context, username, id string, form models.RecipeForm) error
	DeleteRecipe(ctx context.Context, username, id string) error
	CloneRecipe(ctx context.Context, username, id string, form models.RecipeForm) (string, error)
	RateRecipe(ctx context.Context, username, id string, stars int) error
	AddNote(ctx context.Context, username, id, note string) error
	DeleteNote(ctx context.Context, username, id string, index int) error

	ListMasterRecipes(ctx context.Context, username string) ([]models.Recipe, error)
	CreateMasterRecipe(ctx context.Context, username string, form models.RecipeForm) (string, error)
	UpdateMasterRecipe(ctx context.Context, username, id string, form models.RecipeForm) error
	DeleteMasterRecipe(ctx context.Context, username, id string) error
}

// TokenSource yields the current bearer token, or "" when there is none.
type TokenSource interface {
	Token() string
}

type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }
