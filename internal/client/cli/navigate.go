package cli

import (
	"context"

	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
)

// maxHops bounds how many chained navigations one command may trigger.
const maxHops = 3

// Follow opens the page for the route the last command navigated to.
func (a *App) Follow(ctx context.Context) {
	for i := 0; i < maxHops; i++ {
		route, ok := a.router.Take()
		if !ok {
			return
		}

		m := routes.Parse(route)
		var err error
		switch m.Kind {
		case routes.KindHome:
			err = a.Recipes(ctx)
		case routes.KindLogin:
			err = a.Login(ctx)
		case routes.KindRegister:
			err = a.Register(ctx)
		case routes.KindEquipment:
			err = a.Equipment(ctx)
		case routes.KindNewRecipe:
			err = a.New(ctx)
		case routes.KindRecipe:
			err = a.Show(ctx, m.ID)
		case routes.KindEditRecipe:
			err = a.Edit(ctx, m.ID)
		case routes.KindAdminRecipes:
			err = a.Admin(ctx)
		case routes.KindAdminNew:
			err = a.AdminNew(ctx)
		case routes.KindAdminEdit:
			err = a.AdminEdit(ctx, m.ID)
		default:
			a.log.Warn(ctx, "unknown route", "route", route)
		}
		if err != nil {
			a.log.Debug(ctx, "navigation failed", "route", route, "error", err)
		}
	}
}
