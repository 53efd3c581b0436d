package views

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

// DetailPage shows one recipe with the user's rating and notes. Rating and
// notes change on screen only after the server accepted the change.
type DetailPage struct {
	page
	recipes *services.RecipeService
	nav     routes.Navigator
	id      string

	recipe   models.Recipe
	loaded   bool
	notFound bool
}

func NewDetailPage(recipes *services.RecipeService, nav routes.Navigator, id string) *DetailPage {
	p := &DetailPage{recipes: recipes, nav: nav, id: id}
	p.mount()
	return p
}

func (p *DetailPage) Load(ctx context.Context) error {
	r, err := p.recipes.Get(ctx, p.id)
	p.apply(func() {
		p.notFound = client.IsNotFound(err)
		if err == nil {
			p.recipe, p.loaded = r, true
		}
	})
	return p.settle(err)
}

// Recipe returns a copy of the recipe on screen.
func (p *DetailPage) Recipe() models.Recipe {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := p.recipe
	r.UserNotes = slices.Clone(p.recipe.UserNotes)
	return r
}

func (p *DetailPage) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// NotFound reports that the last Load got a 404.
func (p *DetailPage) NotFound() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notFound
}

// Rate writes stars. The displayed rating keeps its prior value until the
// write succeeds.
func (p *DetailPage) Rate(ctx context.Context, stars int) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	err := p.recipes.Rate(ctx, p.id, stars)
	if err == nil {
		p.apply(func() { p.recipe.UserRating = stars })
	}
	return p.settle(err)
}

// AddNote appends note after the server stored it. Blank notes are ignored.
func (p *DetailPage) AddNote(ctx context.Context, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	err := p.recipes.AddNote(ctx, p.id, note)
	if err == nil {
		p.apply(func() { p.recipe.UserNotes = append(p.recipe.UserNotes, note) })
	}
	return p.settle(err)
}

// DeleteNote removes the note at index once the server confirms it.
func (p *DetailPage) DeleteNote(ctx context.Context, index int) error {
	if _, err := models.RemoveNoteAt(p.Recipe().UserNotes, index); err != nil {
		return p.settle(err)
	}
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	err := p.recipes.DeleteNote(ctx, p.id, index)
	if err == nil {
		p.apply(func() {
			if notes, rerr := models.RemoveNoteAt(p.recipe.UserNotes, index); rerr == nil {
				p.recipe.UserNotes = notes
			}
		})
	}
	return p.settle(err)
}

// SaveVersion stores the recipe as a personal copy and opens the copy.
func (p *DetailPage) SaveVersion(ctx context.Context) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	id, err := p.recipes.Clone(ctx, p.Recipe())
	if err == nil && p.Mounted() {
		p.nav.Navigate(routes.Recipe(id))
	}
	return p.settle(err)
}

// Delete removes a personal recipe and returns to the dashboard. Master
// recipes are refused locally.
func (p *DetailPage) Delete(ctx context.Context) error {
	if p.Recipe().IsMasterRecipe {
		return p.settle(&client.APIError{Op: "delete recipe", Status: 403, Message: client.MsgCannotDeleteMaster, Err: client.ErrForbidden})
	}
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	err := p.recipes.Delete(ctx, p.id)
	if err == nil && p.Mounted() {
		p.nav.Navigate(routes.Home)
	}
	return p.settle(err)
}
