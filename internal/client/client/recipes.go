package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/wire"
)

func equipmentQuery(username string, equipment []string) url.Values {
	q := userQuery(username)
	for _, e := range equipment {
		q.Add("equipment", e)
	}
	return q
}

func (c *HTTPClient) list(ctx context.Context, r request) ([]models.Recipe, error) {
	var out []models.Recipe
	r.decode = func(data []byte) (err error) {
		out, err = wire.DecodeRecipeList(data)
		return err
	}
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecipes returns the user's personal recipes usable with any of the
// given equipment; no equipment means no filter.
func (c *HTTPClient) ListRecipes(ctx context.Context, username string, equipment []string) ([]models.Recipe, error) {
	const op = "list recipes"
	if err := identity(op, username); err != nil {
		return nil, err
	}
	return c.list(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/recipies",
		query:  equipmentQuery(username, equipment),
	})
}

// Recommendations returns master recipes matching the user's equipment.
func (c *HTTPClient) Recommendations(ctx context.Context, username string, equipment []string) ([]models.Recipe, error) {
	const op = "recommendations"
	if err := identity(op, username); err != nil {
		return nil, err
	}
	return c.list(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/master/recipies",
		query:  equipmentQuery(username, equipment),
	})
}

func (c *HTTPClient) GetRecipe(ctx context.Context, username, id string) (models.Recipe, error) {
	const op = "get recipe"
	if err := identity(op, username); err != nil {
		return models.Recipe{}, err
	}
	var out wire.RecipeOut
	err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/recipie/" + seg(id),
		query:  userQuery(username),
		denied: MsgRecipeForbidden,
		out:    &out,
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return out.ToModel(), nil
}

func (c *HTTPClient) create(ctx context.Context, r request) (string, error) {
	var out wire.CreatedResponse
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return "", err
	}
	return string(out.ID), nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, username string, form models.RecipeForm) (string, error) {
	const op = "create recipe"
	if err := identity(op, username); err != nil {
		return "", err
	}
	return c.create(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/recipies",
		query:  userQuery(username),
		body:   wire.FromForm(form),
		auth:   true,
	})
}

// UpdateRecipe edits a personal recipe in place. The server refuses master
// recipes with 403.
func (c *HTTPClient) UpdateRecipe(ctx context.Context, username, id string, form models.RecipeForm) error {
	const op = "update recipe"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   "/recipies/" + seg(id),
		query:  userQuery(username),
		body:   wire.FromForm(form),
		auth:   true,
		denied: MsgCannotEditMaster,
	})
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, username, id string) error {
	const op = "delete recipe"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   "/recipies/" + seg(id),
		query:  userQuery(username),
		auth:   true,
		denied: MsgCannotDeleteMaster,
	})
}

// CloneRecipe creates a personal copy of master recipe id from form and
// returns the new id. Rating and notes are not carried over.
func (c *HTTPClient) CloneRecipe(ctx context.Context, username, id string, form models.RecipeForm) (string, error) {
	const op = "clone recipe"
	if err := identity(op, username); err != nil {
		return "", err
	}
	return c.create(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/recipies/" + seg(id) + "/clone",
		query:  userQuery(username),
		body:   wire.FromForm(form),
		auth:   true,
		denied: MsgCloneNotMaster,
	})
}

func (c *HTTPClient) RateRecipe(ctx context.Context, username, id string, stars int) error {
	const op = "rate recipe"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/recipies/" + seg(id) + "/rating",
		query:  userQuery(username),
		body:   wire.RatingRequest{Rating: stars},
		auth:   true,
	})
}

func (c *HTTPClient) AddNote(ctx context.Context, username, id, note string) error {
	const op = "add note"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/recipies/" + seg(id) + "/notes",
		query:  userQuery(username),
		body:   wire.NoteRequest{Note: note},
		auth:   true,
	})
}

func (c *HTTPClient) DeleteNote(ctx context.Context, username, id string, index int) error {
	const op = "delete note"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   "/recipies/" + seg(id) + "/notes/" + strconv.Itoa(index),
		query:  userQuery(username),
		auth:   true,
	})
}
