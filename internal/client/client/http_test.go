package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/logging"
)

type recorded struct {
	Method    string
	Path      string
	Query     map[string][]string
	Auth      string
	RequestID string
	Body      map[string]any
}

type fakeAPI struct {
	mu   sync.Mutex
	reqs []recorded
	srv  *httptest.Server
}

func (f *fakeAPI) record(r *http.Request) {
	rec := recorded{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.Query(),
		Auth:      r.Header.Get("Authorization"),
		RequestID: r.Header.Get("X-Request-ID"),
	}
	if b, _ := io.ReadAll(r.Body); len(b) > 0 {
		_ = json.Unmarshal(b, &rec.Body)
	}
	f.mu.Lock()
	f.reqs = append(f.reqs, rec)
	f.mu.Unlock()
}

func (f *fakeAPI) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.reqs, "no request reached the fake API")
	return f.reqs[len(f.reqs)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

const detailJSON = `{"id": 12, "title": "V60", "description": "bright", "equipment": ["Pour-over"],
	"ingredients": ["15g coffee"], "instructions": ["bloom", "pour"], "userRating": 2,
	"userNotes": ["a", "b"], "isMasterRecipe": true}`

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	})
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		body := f.reqs[len(f.reqs)-1].Body
		f.mu.Unlock()
		switch body["Username"] {
		case "alice":
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "access_token": "tok-alice"})
		case "":
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"detail": []map[string]any{{"msg": "field required"}, {"msg": "value too short"}},
			})
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid credentials"})
		}
	})
	r.Get("/users/{username}/role", func(w http.ResponseWriter, r *http.Request) {
		role := "user"
		if chi.URLParam(r, "username") == "root" {
			role = "admin"
		}
		writeJSON(w, http.StatusOK, map[string]string{"role": role})
	})
	r.Get("/equipment", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"equipment": []string{"French Press", "Pour-over", "Espresso Machine", "Cold Brew"}})
	})
	r.Get("/users/{username}/equipment", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"equipment": []string{"Pour-over"}})
	})
	r.Put("/users/{username}/equipment", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"equipment": []string{"Cold Brew"}})
	})
	r.Get("/recipies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"recipes": [`+detailJSON+`]}`)
	})
	r.Get("/master/recipies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[`+detailJSON+`]`)
	})
	r.Get("/recipie/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "id") {
		case "404":
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Recipe not found"})
		case "403":
			writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Not your recipe"})
		default:
			_, _ = io.WriteString(w, detailJSON)
		}
	})
	r.Post("/recipies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]int{"id": 31})
	})
	r.Put("/recipies/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "12" {
			writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Cannot edit master recipes"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Delete("/recipies/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Cannot delete master recipes"})
	})
	r.Post("/recipies/{id}/clone", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]int{"id": 99})
	})
	r.Post("/recipies/{id}/rating", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/recipies/{id}/notes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Delete("/recipies/{id}/notes/{index}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/admin/recipes", func(r chi.Router) {
		admin := func(w http.ResponseWriter, r *http.Request) bool {
			if r.URL.Query().Get("username") != "root" {
				writeJSON(w, http.StatusForbidden, map[string]string{"detail": "nope"})
				return false
			}
			return true
		}
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			if admin(w, r) {
				_, _ = io.WriteString(w, `[`+detailJSON+`]`)
			}
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			if admin(w, r) {
				writeJSON(w, http.StatusCreated, map[string]string{"id": "m-1"})
			}
		})
		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			if admin(w, r) {
				writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			}
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			if admin(w, r) {
				writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			}
		})
	})

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func newTestClient(t *testing.T, f *fakeAPI, token string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(f.srv.URL+"/", WithTokenSource(TokenSourceFunc(func() string { return token })))
	require.NoError(t, err)
	return c
}

var form = models.RecipeForm{
	Title:        "Aeropress",
	Description:  "Inverted",
	Equipment:    []string{"French Press"},
	Ingredients:  []string{"17g coffee"},
	Instructions: []string{"stir", "press"},
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("127.0.0.1:8000")
	require.Error(t, err)
	_, err = NewHTTPClient("://bad")
	require.Error(t, err)
}

func TestLogin_TokenAndBody(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")

	token, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-alice", token)

	req := f.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, map[string]any{"Username": "alice", "Password": "pw"}, req.Body)
	assert.Empty(t, req.Auth, "login never sends a bearer token")
	_, err = uuid.Parse(req.RequestID)
	assert.NoError(t, err, "X-Request-ID must be a uuid")
}

func TestLogin_ServerMessagesVerbatim(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")

	_, err := c.Login(context.Background(), "mallory", "pw")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.ErrorIs(t, err, ErrRequestFailed)

	_, err = c.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, "field required, value too short", err.Error())
	assert.ErrorIs(t, err, ErrValidation)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "login", apiErr.Op)
}

func TestRegister_SendsEmptyUtensils(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")

	require.NoError(t, c.Register(context.Background(), "bob", "pw"))
	assert.Equal(t, []any{}, f.last(t).Body["Utensils"])
}

func TestRole_PathIdentityAndBearer(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "tok")

	role, err := c.Role(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	req := f.last(t)
	assert.Equal(t, "/users/root/role", req.Path)
	assert.Equal(t, "Bearer tok", req.Auth)
}

func TestEquipment(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "tok")
	ctx := context.Background()

	catalog, err := c.EquipmentCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 4)

	mine, err := c.UserEquipment(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pour-over"}, mine)
	assert.Equal(t, "/users/alice/equipment", f.last(t).Path)

	saved, err := c.SaveUserEquipment(ctx, "alice", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cold Brew"}, saved)
	req := f.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, map[string]any{"Utensils": []any{}}, req.Body)
	assert.Equal(t, "Bearer tok", req.Auth)
}

func TestListRecipes_QueryAndDecoding(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")

	recipes, err := c.ListRecipes(context.Background(), "alice", []string{"Pour-over", "Cold Brew"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "12", recipes[0].ID)

	req := f.last(t)
	assert.Equal(t, []string{"alice"}, req.Query["username"])
	assert.Equal(t, []string{"Pour-over", "Cold Brew"}, req.Query["equipment"])

	rec, err := c.Recommendations(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.Len(t, rec, 1)
	assert.True(t, rec[0].IsMasterRecipe)
	assert.Nil(t, f.last(t).Query["equipment"])
}

func TestGetRecipe(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")
	ctx := context.Background()

	r, err := c.GetRecipe(ctx, "alice", "12")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.UserNotes)
	assert.Equal(t, 2, r.UserRating)

	_, err = c.GetRecipe(ctx, "alice", "404")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Recipe not found", err.Error())

	_, err = c.GetRecipe(ctx, "alice", "403")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, MsgRecipeForbidden, err.Error())
}

func TestRecipeWrites(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "tok")
	ctx := context.Background()

	id, err := c.CreateRecipe(ctx, "alice", form)
	require.NoError(t, err)
	assert.Equal(t, "31", id)
	req := f.last(t)
	assert.Equal(t, "stir\npress", req.Body["Recipie"])
	assert.Equal(t, []any{map[string]any{"Utensil": "French Press"}}, req.Body["Utensils"])
	assert.Equal(t, []string{"alice"}, req.Query["username"])

	require.NoError(t, c.UpdateRecipe(ctx, "alice", "31", form))
	assert.Equal(t, "/recipies/31", f.last(t).Path)

	err = c.UpdateRecipe(ctx, "alice", "12", form)
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, MsgCannotEditMaster, err.Error())

	err = c.DeleteRecipe(ctx, "alice", "12")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, MsgCannotDeleteMaster, err.Error())

	cloneID, err := c.CloneRecipe(ctx, "alice", "12", form)
	require.NoError(t, err)
	assert.Equal(t, "99", cloneID)
	assert.Equal(t, "/recipies/12/clone", f.last(t).Path)
	assert.Equal(t, "Aeropress", f.last(t).Body["Title"])
}

func TestRatingAndNotes(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "tok")
	ctx := context.Background()

	require.NoError(t, c.RateRecipe(ctx, "alice", "12", 4))
	assert.Equal(t, map[string]any{"rating": float64(4)}, f.last(t).Body)

	require.NoError(t, c.AddNote(ctx, "alice", "12", "grind finer"))
	assert.Equal(t, map[string]any{"note": "grind finer"}, f.last(t).Body)

	require.NoError(t, c.DeleteNote(ctx, "alice", "12", 1))
	req := f.last(t)
	assert.Equal(t, "/recipies/12/notes/1", req.Path)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, []string{"alice"}, req.Query["username"])
}

func TestAdminEndpoints(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "tok")
	ctx := context.Background()

	list, err := c.ListMasterRecipes(ctx, "root")
	require.NoError(t, err)
	require.Len(t, list, 1)

	id, err := c.CreateMasterRecipe(ctx, "root", form)
	require.NoError(t, err)
	assert.Equal(t, "m-1", id)

	require.NoError(t, c.UpdateMasterRecipe(ctx, "root", "m-1", form))
	require.NoError(t, c.DeleteMasterRecipe(ctx, "root", "m-1"))
	assert.Equal(t, "Bearer tok", f.last(t).Auth)

	_, err = c.ListMasterRecipes(ctx, "alice")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, MsgAdminRequired, err.Error())

	err = c.DeleteMasterRecipe(ctx, "alice", "m-1")
	assert.Equal(t, MsgAdminRequired, err.Error())
}

func TestNoIdentity_FailsWithoutRequest(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "tok")

	_, err := c.ListRecipes(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrNoSession)
	err = c.RateRecipe(context.Background(), "", "1", 3)
	require.ErrorIs(t, err, ErrNoSession)

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Empty(t, f.reqs)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, WithTimeout(time.Second))
	require.NoError(t, err)

	err = c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, MsgUnavailable, err.Error())
}

func TestLogin_HTMLErrorPageUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>\n<head><title>502 Bad Gateway</title></head>\n"+
			"<body><center><h1>502 Bad Gateway</h1></center><hr><center>nginx</center></body>\n</html>\n")
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.Equal(t, "Bad Gateway", err.Error())
	assert.ErrorIs(t, err, ErrRequestFailed)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestRequestLogCarriesHeaderRequestID(t *testing.T) {
	f := newFakeAPI(t)
	var buf bytes.Buffer
	log, err := logging.New(logging.FormatJSON, "debug", &buf)
	require.NoError(t, err)

	c, err := NewHTTPClient(f.srv.URL, WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, c.Ping(context.Background()))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "api request", line["msg"])
	assert.Equal(t, f.last(t).RequestID, line["request_id"])
}

func TestCancelledContextIsNotUnavailable(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsUnavailable(err))
}

func TestRateLimit_Throttles(t *testing.T) {
	f := newFakeAPI(t)
	c, err := NewHTTPClient(f.srv.URL, WithRateLimit(20, 1))
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Ping(context.Background()))
	}
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestOmitsAuthorizationWithoutToken(t *testing.T) {
	f := newFakeAPI(t)
	c := newTestClient(t, f, "")

	require.NoError(t, c.AddNote(context.Background(), "alice", "12", "x"))
	assert.Empty(t, f.last(t).Auth)
}
