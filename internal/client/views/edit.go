package views

import (
	"context"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

// EditPage edits a recipe. Saving a personal recipe updates it and opens it.
// Saving a master recipe creates a personal copy and opens the copy's edit
// page; the master recipe is left untouched. On failure the form stays as
// entered and nothing navigates.
type EditPage struct {
	page
	recipes *services.RecipeService
	nav     routes.Navigator
	id      string

	recipe models.Recipe
	form   models.RecipeForm
	loaded bool
}

func NewEditPage(recipes *services.RecipeService, nav routes.Navigator, id string) *EditPage {
	p := &EditPage{recipes: recipes, nav: nav, id: id}
	p.mount()
	return p
}

func (p *EditPage) Load(ctx context.Context) error {
	r, err := p.recipes.Get(ctx, p.id)
	if err == nil {
		p.apply(func() { p.recipe, p.form, p.loaded = r, r.Form(), true })
	}
	return p.settle(err)
}

func (p *EditPage) Recipe() models.Recipe {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recipe
}

func (p *EditPage) Form() models.RecipeForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *EditPage) SetForm(form models.RecipeForm) {
	p.apply(func() { p.form = form })
}

// Submit saves the form.
func (p *EditPage) Submit(ctx context.Context) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	p.mu.Lock()
	recipe, form := p.recipe, p.form
	p.mu.Unlock()

	out, err := p.recipes.SaveEdit(ctx, recipe, form)
	if err != nil {
		return p.settle(err)
	}
	if p.Mounted() {
		if out.Cloned {
			p.nav.Navigate(routes.EditRecipe(out.TargetID))
		} else {
			p.nav.Navigate(routes.Recipe(out.TargetID))
		}
	}
	return p.settle(nil)
}

// NewRecipePage creates a personal recipe and opens it.
type NewRecipePage struct {
	page
	recipes *services.RecipeService
	nav     routes.Navigator
	form    models.RecipeForm
}

func NewNewRecipePage(recipes *services.RecipeService, nav routes.Navigator) *NewRecipePage {
	p := &NewRecipePage{recipes: recipes, nav: nav}
	p.mount()
	return p
}

func (p *NewRecipePage) Form() models.RecipeForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *NewRecipePage) SetForm(form models.RecipeForm) {
	p.apply(func() { p.form = form })
}

func (p *NewRecipePage) Submit(ctx context.Context) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	id, err := p.recipes.Create(ctx, p.Form())
	if err == nil && p.Mounted() {
		p.nav.Navigate(routes.Recipe(id))
	}
	return p.settle(err)
}
