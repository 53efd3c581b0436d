package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/brewkeeper/internal/client/views"
)

// Admin lists the master recipe catalog.
func (a *App) Admin(ctx context.Context) error {
	return a.adminOnly(ctx, func() error {
		p := views.NewAdminRecipesPage(a.admin)
		defer p.Unmount()
		if err := p.Load(ctx); err != nil {
			return err
		}
		fmt.Fprint(a.out, renderRecipeList("Master recipes", p.Recipes(), "the catalog is empty"))
		return nil
	})
}

func (a *App) AdminNew(ctx context.Context) error {
	return a.adminOnly(ctx, func() error {
		return a.adminForm(ctx, views.NewAdminNewPage(a.admin, a.router), "Master recipe created")
	})
}

func (a *App) AdminEdit(ctx context.Context, id string) error {
	return a.adminOnly(ctx, func() error {
		return a.adminForm(ctx, views.NewAdminEditPage(a.admin, a.router, id), "Master recipe updated")
	})
}

func (a *App) adminForm(ctx context.Context, p *views.AdminFormPage, done string) error {
	defer p.Unmount()
	if err := p.Load(ctx); err != nil {
		return err
	}
	catalog, err := a.equipment.Catalog(ctx)
	if err != nil {
		return err
	}
	form, err := inputRecipeForm(a.reader, a.out, p.Form(), catalog)
	if err != nil {
		return err
	}
	p.SetForm(form)
	if err := p.Submit(ctx); err != nil {
		return err
	}
	a.ok(done)
	return nil
}

func (a *App) AdminDelete(ctx context.Context, id string) error {
	return a.adminOnly(ctx, func() error {
		p := views.NewAdminRecipesPage(a.admin)
		defer p.Unmount()
		if err := p.Delete(ctx, id); err != nil {
			return err
		}
		a.ok("Master recipe deleted")
		return nil
	})
}
