package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
)

func (a *App) getStatus() string {
	s := ""
	if sess := a.auth.Current(); sess.Authenticated() {
		s = sess.Username + " "
		if sess.IsAdmin {
			s += "admin "
		}
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores the saved session, asks for credentials when there is none,
// starts the connectivity watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("Welcome to brewkeeper CLI (type 'help' for commands)"))

	if _, err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if !a.isLoggedIn() {
		a.router.Navigate(routes.Login)
		a.Follow(ctx)
	}

	interval := 5 * time.Second
	if a.config != nil && a.config.OnlineCheckInterval > 0 {
		interval = a.config.OnlineCheckInterval
	}
	go a.StartOnlineStatusWatcher(ctx, interval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
