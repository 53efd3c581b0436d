package views

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

// AdminRecipesPage lists the master recipe catalog.
type AdminRecipesPage struct {
	page
	admin *services.AdminService

	recipes []models.Recipe
}

func NewAdminRecipesPage(admin *services.AdminService) *AdminRecipesPage {
	p := &AdminRecipesPage{admin: admin}
	p.mount()
	return p
}

func (p *AdminRecipesPage) Load(ctx context.Context) error {
	list, err := p.admin.List(ctx)
	if err == nil {
		p.apply(func() { p.recipes = list })
	}
	return p.settle(err)
}

func (p *AdminRecipesPage) Recipes() []models.Recipe {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.recipes)
}

// Delete removes the master recipe and drops it from the list.
func (p *AdminRecipesPage) Delete(ctx context.Context, id string) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	err := p.admin.Delete(ctx, id)
	if err == nil {
		p.apply(func() {
			p.recipes = slices.DeleteFunc(p.recipes, func(r models.Recipe) bool { return r.ID == id })
		})
	}
	return p.settle(err)
}

// AdminFormPage creates a master recipe, or updates one when it was built
// with an id. Both go back to the catalog afterwards.
type AdminFormPage struct {
	page
	admin *services.AdminService
	nav   routes.Navigator
	id    string

	form models.RecipeForm
}

func NewAdminNewPage(admin *services.AdminService, nav routes.Navigator) *AdminFormPage {
	p := &AdminFormPage{admin: admin, nav: nav}
	p.mount()
	return p
}

func NewAdminEditPage(admin *services.AdminService, nav routes.Navigator, id string) *AdminFormPage {
	p := &AdminFormPage{admin: admin, nav: nav, id: id}
	p.mount()
	return p
}

// Load fills the form from the stored recipe. It is a no-op for a new one.
func (p *AdminFormPage) Load(ctx context.Context) error {
	if p.id == "" {
		return nil
	}
	r, err := p.admin.Get(ctx, p.id)
	if err == nil {
		p.apply(func() { p.form = r.Form() })
	}
	return p.settle(err)
}

func (p *AdminFormPage) Form() models.RecipeForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *AdminFormPage) SetForm(form models.RecipeForm) {
	p.apply(func() { p.form = form })
}

func (p *AdminFormPage) Submit(ctx context.Context) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	var err error
	if p.id == "" {
		_, err = p.admin.Create(ctx, p.Form())
	} else {
		err = p.admin.Update(ctx, p.id, p.Form())
	}
	if err == nil && p.Mounted() {
		p.nav.Navigate(routes.AdminRecipes)
	}
	return p.settle(err)
}
