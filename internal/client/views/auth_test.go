package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/routes"
)

func TestLoginPage(t *testing.T) {
	f := newFixture()
	f.fc.LoginErr = &client.APIError{Message: "Incorrect username or password", Err: client.ErrUnauthorized}
	auth := f.auth(t)
	p := NewLoginPage(auth, f.nav)

	require.Error(t, p.Submit(context.Background(), "alice", []byte("bad")))
	assert.Equal(t, "Incorrect username or password", p.Err())
	assert.Equal(t, models.StateAnonymous, auth.State())
	assert.Empty(t, f.nav.History())

	f.fc.LoginErr = nil
	f.fc.LoginToken = "tok"
	require.NoError(t, p.Submit(context.Background(), "alice", []byte("good")))
	assert.Equal(t, models.StateUser, auth.State())
	assert.Equal(t, []string{routes.Home}, f.nav.History())
}

func TestRegisterPage_LogsInAfterwards(t *testing.T) {
	f := newFixture()
	f.fc.LoginToken = "tok"
	auth := f.auth(t)
	p := NewRegisterPage(auth, f.nav)

	require.NoError(t, p.Submit(context.Background(), "bob", []byte("pw")))
	assert.Equal(t, []string{"Register", "Login", "Role"}, f.fc.Calls())
	assert.Equal(t, "bob", auth.Current().Username)
	assert.Equal(t, []string{routes.Home}, f.nav.History())
}

func TestRegisterPage_FailureDoesNotLogIn(t *testing.T) {
	f := newFixture()
	f.fc.RegisterErr = &client.APIError{Message: "Username already registered", Err: client.ErrRequestFailed}
	p := NewRegisterPage(f.auth(t), f.nav)

	require.Error(t, p.Submit(context.Background(), "bob", []byte("pw")))
	assert.Contains(t, p.Err(), "Username already registered")
	assert.False(t, f.fc.Called("Login"))
}
