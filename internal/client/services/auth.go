// Package services contains application services for the brewkeeper client.
// This file defines the authentication service: the session state machine
// (anonymous, user, admin), its transitions and change notifications.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/session"
	"github.com/dmitrijs2005/brewkeeper/internal/client/wire"
	"github.com/dmitrijs2005/brewkeeper/internal/logging"
)

// SessionSource exposes the current session snapshot.
type SessionSource interface {
	Current() models.Session
}

// AuthService owns the session. Login, Logout and VerifyAdmin are the only
// operations that change it, and each one needs a server round trip except
// Logout. Subscribers are notified after every change.
type AuthService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger

	// serialises transitions
	mu sync.Mutex

	subMu  sync.Mutex
	subs   map[int]func(models.Session)
	nextID int
}

// NewAuthService constructs an AuthService bound to the API client and the
// session store.
func NewAuthService(c client.Client, store *session.Store, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &AuthService{client: c, store: store, log: log, subs: map[int]func(models.Session){}}
}

// Restore reads the persisted session. Until it runs the state is anonymous.
func (a *AuthService) Restore(ctx context.Context) (models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, err := a.store.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}
	a.notify(sess)
	return sess, nil
}

func (a *AuthService) Current() models.Session { return a.store.Snapshot() }

func (a *AuthService) State() models.State { return a.Current().State() }

// Subscribe registers fn for session changes and returns a function that
// removes it.
func (a *AuthService) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	a.subMu.Lock()
	defer a.subMu.Unlock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	return func() {
		a.subMu.Lock()
		delete(a.subs, id)
		a.subMu.Unlock()
	}
}

func (a *AuthService) notify(sess models.Session) {
	a.subMu.Lock()
	fns := make([]func(models.Session), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}

// Register creates the account. It does not log in.
func (a *AuthService) Register(ctx context.Context, username string, password []byte) error {
	if err := a.client.Register(ctx, username, string(password)); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login authenticates and persists identity and token, then probes the role
// once. A failed probe leaves the session at authenticated-user. A failed
// login persists nothing and returns the server's message unchanged.
func (a *AuthService) Login(ctx context.Context, username string, password []byte) (models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return a.store.Snapshot(), err
	}

	if err := a.store.Save(ctx, username, token); err != nil {
		return a.store.Snapshot(), err
	}
	a.log.Info(ctx, "logged in", "user", username)
	a.notify(a.store.Snapshot())

	if _, err := a.verifyAdmin(ctx); err != nil {
		a.log.Warn(ctx, "admin probe failed", "user", username, "error", err)
	}
	return a.store.Snapshot(), nil
}

// Logout forgets identity, token and admin flag.
func (a *AuthService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.store.Clear(ctx)
	a.notify(a.store.Snapshot())
	return err
}

// VerifyAdmin asks the server for the user's role and records the answer.
// Callers guarding admin operations must use the returned value, not the
// cached flag.
func (a *AuthService) VerifyAdmin(ctx context.Context) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.verifyAdmin(ctx)
}

func (a *AuthService) verifyAdmin(ctx context.Context) (bool, error) {
	sess := a.store.Snapshot()
	if !sess.Authenticated() {
		return false, &client.APIError{Op: "role", Message: client.ErrNoSession.Error(), Err: client.ErrNoSession}
	}

	role, err := a.client.Role(ctx, sess.Username)
	if err != nil {
		return false, err
	}

	isAdmin := wire.RoleResponse{Role: role}.IsAdmin()
	if isAdmin != sess.IsAdmin {
		if err := a.store.SetAdmin(ctx, isAdmin); err != nil {
			return isAdmin, err
		}
		a.notify(a.store.Snapshot())
	}
	return isAdmin, nil
}

// Ping proxies a liveness check to the underlying client.
func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// IsAuthError reports whether err means the stored session is no longer
// accepted by the server.
func IsAuthError(err error) bool {
	return errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoSession)
}
