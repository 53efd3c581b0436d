// Package session persists the logged-in identity, its bearer token and the
// cached admin flag, and hands out immutable snapshots of them.
package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/brewkeeper/internal/common"
)

// Store is safe for concurrent use. Its in-memory copy follows storage: a
// failed write leaves the previous snapshot in place, except Clear which
// always forgets the session locally.
type Store struct {
	repo metadata.Repository
	now  func() time.Time

	mu  sync.RWMutex
	cur models.Session
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo, now: time.Now}
}

// Load reads the stored session. A token that is a JWT with an exp in the
// past wipes the session and Load reports anonymous. Opaque tokens are kept
// as they are.
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	values, err := s.repo.List(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	sess := models.Session{
		Username: string(values[common.SessionKeyUsername]),
		Token:    string(values[common.SessionKeyToken]),
	}
	sess.IsAdmin, _ = strconv.ParseBool(string(values[common.SessionKeyIsAdmin]))

	if !sess.Authenticated() || TokenExpired(sess.Token, s.now()) {
		if err := s.Clear(ctx); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, nil
	}

	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
	return sess, nil
}

// Save stores a fresh login. The admin flag is reset until the next probe.
func (s *Store) Save(ctx context.Context, username, token string) error {
	err := s.repo.SetMany(ctx, map[string][]byte{
		common.SessionKeyUsername: []byte(username),
		common.SessionKeyToken:    []byte(token),
		common.SessionKeyIsAdmin:  []byte(strconv.FormatBool(false)),
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{Username: username, Token: token}
	s.mu.Unlock()
	return nil
}

func (s *Store) SetAdmin(ctx context.Context, isAdmin bool) error {
	if err := s.repo.Set(ctx, common.SessionKeyIsAdmin, []byte(strconv.FormatBool(isAdmin))); err != nil {
		return fmt.Errorf("save admin flag: %w", err)
	}

	s.mu.Lock()
	s.cur.IsAdmin = isAdmin
	s.mu.Unlock()
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cur = models.Session{}
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	return s.Snapshot().Token
}

// TokenExpired reports whether token is a JWT whose exp claim is before now.
// The signature is not checked; only the server can do that.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
