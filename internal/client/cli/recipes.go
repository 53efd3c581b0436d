package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/brewkeeper/internal/client/views"
)

// Recipes shows the dashboard: owned equipment, personal recipes and
// recommended master recipes.
func (a *App) Recipes(ctx context.Context) error {
	return a.protected(func() error {
		p := views.NewRecipesPage(a.recipes)
		defer p.Unmount()
		if err := p.Load(ctx); err != nil {
			return a.fail(ctx, err)
		}

		equipment := "none (use 'equipment' to pick some)"
		if eq := p.Equipment(); len(eq) > 0 {
			equipment = strings.Join(eq, ", ")
		}
		fmt.Fprintln(a.out, mutedStyle.Render("Equipment: "+equipment))
		fmt.Fprint(a.out, renderRecipeList("My recipes", p.Personal(), "no recipes yet, create one with 'new'"))
		fmt.Fprint(a.out, renderRecipeList("Recommended", p.Recommended(), "no recommendations for your equipment"))
		return nil
	})
}

// loadDetail opens the detail page for id and prints a failure.
func (a *App) loadDetail(ctx context.Context, id string) (*views.DetailPage, error) {
	p := views.NewDetailPage(a.recipes, a.router, id)
	if err := p.Load(ctx); err != nil {
		p.Unmount()
		if p.NotFound() {
			fmt.Fprintln(a.out, mutedStyle.Render("Recipe not found"))
			return nil, err
		}
		return nil, a.fail(ctx, err)
	}
	return p, nil
}

func (a *App) Show(ctx context.Context, id string) error {
	return a.protected(func() error {
		p, err := a.loadDetail(ctx, id)
		if err != nil {
			return err
		}
		defer p.Unmount()
		fmt.Fprint(a.out, renderRecipe(p.Recipe()))
		return nil
	})
}

func (a *App) New(ctx context.Context) error {
	return a.protected(func() error {
		catalog, err := a.equipment.Catalog(ctx)
		if err != nil {
			return a.fail(ctx, err)
		}

		p := views.NewNewRecipePage(a.recipes, a.router)
		defer p.Unmount()

		form, err := inputRecipeForm(a.reader, a.out, p.Form(), catalog)
		if err != nil {
			return a.fail(ctx, err)
		}
		p.SetForm(form)
		if err := p.Submit(ctx); err != nil {
			return a.fail(ctx, err)
		}
		a.ok("Recipe created")
		return nil
	})
}

// Edit changes a recipe. A master recipe is saved as a new personal copy,
// whose edit page opens next.
func (a *App) Edit(ctx context.Context, id string) error {
	return a.protected(func() error {
		p := views.NewEditPage(a.recipes, a.router, id)
		defer p.Unmount()
		if err := p.Load(ctx); err != nil {
			return a.fail(ctx, err)
		}
		catalog, err := a.equipment.Catalog(ctx)
		if err != nil {
			return a.fail(ctx, err)
		}

		master := p.Recipe().IsMasterRecipe
		if master {
			fmt.Fprintln(a.out, badgeStyle.Render("This is a master recipe; your changes will be saved as a personal copy."))
		}
		form, err := inputRecipeForm(a.reader, a.out, p.Form(), catalog)
		if err != nil {
			return a.fail(ctx, err)
		}
		p.SetForm(form)
		if err := p.Submit(ctx); err != nil {
			return a.fail(ctx, err)
		}

		if master {
			a.ok("Saved as a personal copy")
		} else {
			a.ok("Recipe updated")
		}
		return nil
	})
}

func (a *App) Delete(ctx context.Context, id string) error {
	return a.protected(func() error {
		p, err := a.loadDetail(ctx, id)
		if err != nil {
			return err
		}
		defer p.Unmount()
		if err := p.Delete(ctx); err != nil {
			return a.fail(ctx, err)
		}
		a.ok("Recipe deleted")
		return nil
	})
}

func (a *App) Rate(ctx context.Context, id, starsArg string) error {
	return a.protected(func() error {
		n, err := strconv.Atoi(starsArg)
		if err != nil {
			return a.fail(ctx, fmt.Errorf("rating must be a number from 1 to 5"))
		}
		p, err := a.loadDetail(ctx, id)
		if err != nil {
			return err
		}
		defer p.Unmount()

		err = p.Rate(ctx, n)
		fmt.Fprintf(a.out, "Rating: %s\n", stars(p.Recipe().UserRating))
		if err != nil {
			return a.fail(ctx, err)
		}
		return nil
	})
}

func (a *App) Note(ctx context.Context, id string) error {
	return a.protected(func() error {
		p, err := a.loadDetail(ctx, id)
		if err != nil {
			return err
		}
		defer p.Unmount()

		text, err := getSimpleText(a.reader, "Enter note", a.out)
		if err != nil {
			return a.fail(ctx, err)
		}
		if err := p.AddNote(ctx, text); err != nil {
			return a.fail(ctx, err)
		}
		fmt.Fprintf(a.out, "Notes: %d\n", len(p.Recipe().UserNotes))
		return nil
	})
}

// DeleteNote removes a note by its 1-based position as shown by 'show'.
func (a *App) DeleteNote(ctx context.Context, id, indexArg string) error {
	return a.protected(func() error {
		n, err := strconv.Atoi(indexArg)
		if err != nil {
			return a.fail(ctx, fmt.Errorf("note number must be a positive number"))
		}
		p, err := a.loadDetail(ctx, id)
		if err != nil {
			return err
		}
		defer p.Unmount()

		if err := p.DeleteNote(ctx, n-1); err != nil {
			return a.fail(ctx, err)
		}
		a.ok("Note deleted")
		return nil
	})
}

// Clone saves a master recipe as a personal copy and opens it.
func (a *App) Clone(ctx context.Context, id string) error {
	return a.protected(func() error {
		p, err := a.loadDetail(ctx, id)
		if err != nil {
			return err
		}
		defer p.Unmount()

		if err := p.SaveVersion(ctx); err != nil {
			return a.fail(ctx, err)
		}
		a.ok("Saved as a personal copy")
		return nil
	})
}
