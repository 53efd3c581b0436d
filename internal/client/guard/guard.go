// Package guard protects client pages that need a logged-in user or an
// administrator.
package guard

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

const (
	RedirectPlaceholder = "Redirecting to login…"
	AdminDenied         = "Admin access required"
)

// Guard renders children only for an authenticated session. For an anonymous
// session it returns RedirectPlaceholder and navigates to the login route,
// once per anonymous period.
type Guard struct {
	sessions   services.SessionSource
	nav        routes.Navigator
	redirected atomic.Bool
}

func New(sessions services.SessionSource, nav routes.Navigator) *Guard {
	return &Guard{sessions: sessions, nav: nav}
}

// Render runs children when the session is authenticated and returns its
// error. Otherwise children is not called and the placeholder is returned.
func (g *Guard) Render(children func() error) (placeholder string, err error) {
	if g.sessions.Current().State() == models.StateAnonymous {
		if g.redirected.CompareAndSwap(false, true) {
			g.nav.Navigate(routes.Login)
		}
		return RedirectPlaceholder, nil
	}

	g.redirected.Store(false)
	return "", children()
}

// AdminGuard adds an authoritative role probe on top of Guard.
type AdminGuard struct {
	*Guard
	verifier services.AdminVerifier
}

func NewAdmin(g *Guard, verifier services.AdminVerifier) *AdminGuard {
	return &AdminGuard{Guard: g, verifier: verifier}
}

// Render asks the server whether the user is an administrator before running
// children. A denial returns AdminDenied; a failed probe returns its error.
func (g *AdminGuard) Render(ctx context.Context, children func() error) (placeholder string, err error) {
	var denied bool
	placeholder, err = g.Guard.Render(func() error {
		ok, err := g.verifier.VerifyAdmin(ctx)
		if err != nil {
			return err
		}
		if !ok {
			denied = true
			return nil
		}
		return children()
	})
	if denied {
		return AdminDenied, nil
	}
	return placeholder, err
}
