package views

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

// RecipesPage is the dashboard: the user's equipment, their recipes and the
// master recipes recommended for that equipment.
type RecipesPage struct {
	page
	recipes *services.RecipeService

	data   services.Dashboard
	loaded bool
}

func NewRecipesPage(recipes *services.RecipeService) *RecipesPage {
	p := &RecipesPage{recipes: recipes}
	p.mount()
	return p
}

func (p *RecipesPage) Load(ctx context.Context) error {
	d, err := p.recipes.Dashboard(ctx)
	if err == nil {
		p.apply(func() { p.data, p.loaded = d, true })
	}
	return p.settle(err)
}

func (p *RecipesPage) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

func (p *RecipesPage) Equipment() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.data.Equipment)
}

func (p *RecipesPage) Personal() []models.Recipe {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.data.Personal)
}

func (p *RecipesPage) Recommended() []models.Recipe {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.data.Recommended)
}

// Empty reports a loaded dashboard with nothing to show.
func (p *RecipesPage) Empty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded && len(p.data.Personal) == 0 && len(p.data.Recommended) == 0
}
