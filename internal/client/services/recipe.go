package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

// Dashboard is what the recipes page shows: the user's equipment, their own
// recipes and the master recipes recommended for that equipment.
type Dashboard struct {
	Equipment   []string
	Personal    []models.Recipe
	Recommended []models.Recipe
}

// EditOutcome tells the caller where to go after saving an edit. Cloned is
// set when the edited recipe was a master recipe and TargetID is the new
// personal copy.
type EditOutcome struct {
	TargetID string
	Cloned   bool
}

// RecipeService runs recipe operations as the current user.
type RecipeService struct {
	client   client.Client
	sessions SessionSource
}

func NewRecipeService(c client.Client, sessions SessionSource) *RecipeService {
	return &RecipeService{client: c, sessions: sessions}
}

func (s *RecipeService) user() string { return s.sessions.Current().Username }

// Dashboard loads the user's equipment first, then both recipe lists
// filtered by it concurrently.
func (s *RecipeService) Dashboard(ctx context.Context) (Dashboard, error) {
	user := s.user()

	equipment, err := s.client.UserEquipment(ctx, user)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{Equipment: equipment}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.Personal, err = s.client.ListRecipes(gctx, user, equipment)
		return err
	})
	g.Go(func() error {
		var err error
		d.Recommended, err = s.client.Recommendations(gctx, user, equipment)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{Equipment: equipment}, err
	}
	return d, nil
}

func (s *RecipeService) List(ctx context.Context, equipment []string) ([]models.Recipe, error) {
	return s.client.ListRecipes(ctx, s.user(), equipment)
}

func (s *RecipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	if id == "" {
		return models.Recipe{}, models.ErrUnknownRecipe
	}
	return s.client.GetRecipe(ctx, s.user(), id)
}

func (s *RecipeService) Create(ctx context.Context, form models.RecipeForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}
	return s.client.CreateRecipe(ctx, s.user(), form)
}

// SaveEdit applies form to recipe. A personal recipe is updated in place. A
// master recipe is never updated: a personal clone carrying the form is
// created instead and its id returned. If the clone fails nothing else is
// attempted.
func (s *RecipeService) SaveEdit(ctx context.Context, recipe models.Recipe, form models.RecipeForm) (EditOutcome, error) {
	if err := form.Validate(); err != nil {
		return EditOutcome{}, err
	}

	if recipe.IsMasterRecipe {
		id, err := s.client.CloneRecipe(ctx, s.user(), recipe.ID, form)
		if err != nil {
			return EditOutcome{}, err
		}
		if id == "" {
			return EditOutcome{}, fmt.Errorf("clone recipe %s: %w", recipe.ID, models.ErrUnknownRecipe)
		}
		return EditOutcome{TargetID: id, Cloned: true}, nil
	}

	if err := s.client.UpdateRecipe(ctx, s.user(), recipe.ID, form); err != nil {
		return EditOutcome{}, err
	}
	return EditOutcome{TargetID: recipe.ID}, nil
}

// Clone saves recipe as a personal copy unchanged.
func (s *RecipeService) Clone(ctx context.Context, recipe models.Recipe) (string, error) {
	return s.client.CloneRecipe(ctx, s.user(), recipe.ID, recipe.Form())
}

func (s *RecipeService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteRecipe(ctx, s.user(), id)
}

func (s *RecipeService) Rate(ctx context.Context, id string, stars int) error {
	if err := models.ValidateRating(stars); err != nil {
		return err
	}
	return s.client.RateRecipe(ctx, s.user(), id, stars)
}

func (s *RecipeService) AddNote(ctx context.Context, id, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return models.ErrEmptyNote
	}
	return s.client.AddNote(ctx, s.user(), id, note)
}

func (s *RecipeService) DeleteNote(ctx context.Context, id string, index int) error {
	if index < 0 {
		return models.ErrNoteIndex
	}
	return s.client.DeleteNote(ctx, s.user(), id, index)
}
