package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/brewkeeper/internal/client/client"
	"github.com/dmitrijs2005/brewkeeper/internal/client/client/clienttest"
	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/brewkeeper/internal/client/session"
	"github.com/dmitrijs2005/brewkeeper/internal/logging"
)

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func newTestApp(t *testing.T, fc *clienttest.Fake, input ...string) (*App, *bytes.Buffer) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := newApp(fc, session.NewStore(metadata.NewSQLiteRepository(db)), logging.Nop())
	out := &bytes.Buffer{}
	a.out = out
	a.reader = readerFromLines(input...)
	return a, out
}

func loginAs(t *testing.T, a *App, fc *clienttest.Fake, username, role string) {
	t.Helper()
	fc.LoginToken, fc.RoleRet = "tok", role
	_, err := a.auth.Login(context.Background(), username, []byte("pw"))
	require.NoError(t, err)
}

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

var catalog = []string{"French Press", "Pour-over", "Cold Brew"}

func master(id string) models.Recipe {
	return models.Recipe{
		ID: id, Title: "Classic V60", Description: "Clean", Equipment: []string{"Pour-over"},
		Ingredients: []string{"15g coffee"}, Instructions: []string{"Bloom", "Pour"}, IsMasterRecipe: true,
	}
}

func personal(id string) models.Recipe {
	r := master(id)
	r.Title, r.IsMasterRecipe = "My V60", false
	return r
}
