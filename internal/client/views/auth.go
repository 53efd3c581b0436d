package views

import (
	"context"

	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
	"github.com/dmitrijs2005/brewkeeper/internal/client/services"
)

// LoginPage logs the user in and opens the dashboard.
type LoginPage struct {
	page
	auth *services.AuthService
	nav  routes.Navigator
}

func NewLoginPage(auth *services.AuthService, nav routes.Navigator) *LoginPage {
	p := &LoginPage{auth: auth, nav: nav}
	p.mount()
	return p
}

func (p *LoginPage) Submit(ctx context.Context, username string, password []byte) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	_, err := p.auth.Login(ctx, username, password)
	if err == nil && p.Mounted() {
		p.nav.Navigate(routes.Home)
	}
	return p.settle(err)
}

// RegisterPage creates an account, logs into it and opens the dashboard.
type RegisterPage struct {
	page
	auth *services.AuthService
	nav  routes.Navigator
}

func NewRegisterPage(auth *services.AuthService, nav routes.Navigator) *RegisterPage {
	p := &RegisterPage{auth: auth, nav: nav}
	p.mount()
	return p
}

func (p *RegisterPage) Submit(ctx context.Context, username string, password []byte) error {
	if err := p.begin(); err != nil {
		return err
	}
	defer p.end()

	if err := p.auth.Register(ctx, username, password); err != nil {
		return p.settle(err)
	}
	_, err := p.auth.Login(ctx, username, password)
	if err == nil && p.Mounted() {
		p.nav.Navigate(routes.Home)
	}
	return p.settle(err)
}
