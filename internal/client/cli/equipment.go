package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/brewkeeper/internal/client/views"
)

// Equipment shows the catalog with the user's items checked and lets the
// user toggle items by number. The selection is saved when the user finishes
// with an empty line.
func (a *App) Equipment(ctx context.Context) error {
	return a.protected(func() error {
		p := views.NewEquipmentPage(a.equipment)
		defer p.Unmount()
		if err := p.Load(ctx); err != nil {
			return a.fail(ctx, err)
		}

		catalog := p.Catalog()
		changed := false
		for {
			fmt.Fprint(a.out, renderEquipment(catalog, p.IsSelected))
			line, err := getSimpleText(a.reader, "Toggle items by number (space separated, empty line to finish)", a.out)
			if err != nil || line == "" {
				break
			}
			for _, f := range strings.Fields(line) {
				n, err := strconv.Atoi(f)
				if err != nil || n < 1 || n > len(catalog) {
					fmt.Fprintln(a.out, errorStyle.Render("No such item: "+f))
					continue
				}
				if err := p.Toggle(catalog[n-1]); err != nil {
					fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
					continue
				}
				changed = true
			}
		}

		if !changed {
			return nil
		}
		if err := p.Save(ctx); err != nil {
			return a.fail(ctx, err)
		}
		a.ok("Equipment saved")
		return nil
	})
}
