package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/views"
	"github.com/dmitrijs2005/brewkeeper/internal/common"
)

// credentials prompts for a username and a password. The caller must wipe
// the password.
func (a *App) credentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for credentials, creates the account and logs into it.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is printed and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return a.report(ctx, err)
	}
	defer common.WipeByteArray(password)

	p := views.NewRegisterPage(a.auth, a.router)
	defer p.Unmount()
	if err := p.Submit(ctx, userName, password); err != nil {
		return a.report(ctx, err)
	}

	a.ok("Registered and logged in as " + userName)
	return nil
}

// Login prompts for credentials and authenticates. On success the dashboard
// is opened; a failure leaves the client logged out and prints the server's
// message.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return a.report(ctx, err)
	}
	defer common.WipeByteArray(password)

	p := views.NewLoginPage(a.auth, a.router)
	defer p.Unmount()
	if err := p.Submit(ctx, userName, password); err != nil {
		if client.IsUnavailable(err) {
			a.setMode(ModeOffline)
		}
		return a.report(ctx, err)
	}

	a.setMode(ModeOnline)
	a.ok("Login successful")
	return nil
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.ok("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	return a.protected(func() error {
		sess := a.auth.Current()
		fmt.Fprintf(a.out, "%s (%s)\n", titleStyle.Render(sess.Username), sess.State())
		return nil
	})
}

// protected runs fn behind the route guard and prints its placeholder.
func (a *App) protected(fn func() error) error {
	placeholder, err := a.guard.Render(fn)
	if placeholder != "" {
		fmt.Fprintln(a.out, mutedStyle.Render(placeholder))
	}
	return err
}

// adminOnly runs fn behind the admin guard.
func (a *App) adminOnly(ctx context.Context, fn func() error) error {
	placeholder, err := a.adminGuard.Render(ctx, fn)
	if err != nil {
		return a.fail(ctx, err)
	}
	if placeholder != "" {
		fmt.Fprintln(a.out, errorStyle.Render(placeholder))
	}
	return nil
}

// report prints err for the user and returns it.
func (a *App) report(ctx context.Context, err error) error {
	if errors.Is(err, views.ErrSubmitting) {
		return err
	}
	fmt.Fprintln(a.out, errorStyle.Render("Error: "+err.Error()))
	a.log.Debug(ctx, "command failed", "error", err)
	return err
}

// fail is report for commands that run with a session. A rejected token
// ends the session and sends the user to the login prompt.
func (a *App) fail(ctx context.Context, err error) error {
	a.report(ctx, err)
	if errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn() {
		if lerr := a.auth.Logout(ctx); lerr == nil {
			fmt.Fprintln(a.out, mutedStyle.Render("Session expired, please log in again"))
			a.router.Navigate(routes.Login)
		}
	}
	return err
}

func (a *App) ok(msg string) {
	fmt.Fprintln(a.out, successStyle.Render(msg))
}
