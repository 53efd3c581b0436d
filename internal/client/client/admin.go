package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
	"github.com/dmitrijs2005/brewkeeper/internal/client/wire"
)

func (c *HTTPClient) ListMasterRecipes(ctx context.Context, username string) ([]models.Recipe, error) {
	const op = "list master recipes"
	if err := identity(op, username); err != nil {
		return nil, err
	}
	return c.list(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/admin/recipes",
		query:  userQuery(username),
		auth:   true,
		denied: MsgAdminRequired,
	})
}

func (c *HTTPClient) CreateMasterRecipe(ctx context.Context, username string, form models.RecipeForm) (string, error) {
	const op = "create master recipe"
	if err := identity(op, username); err != nil {
		return "", err
	}
	return c.create(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/admin/recipes",
		query:  userQuery(username),
		body:   wire.FromForm(form),
		auth:   true,
		denied: MsgAdminRequired,
	})
}

func (c *HTTPClient) UpdateMasterRecipe(ctx context.Context, username, id string, form models.RecipeForm) error {
	const op = "update master recipe"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   "/admin/recipes/" + seg(id),
		query:  userQuery(username),
		body:   wire.FromForm(form),
		auth:   true,
		denied: MsgAdminRequired,
	})
}

func (c *HTTPClient) DeleteMasterRecipe(ctx context.Context, username, id string) error {
	const op = "delete master recipe"
	if err := identity(op, username); err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   "/admin/recipes/" + seg(id),
		query:  userQuery(username),
		auth:   true,
		denied: MsgAdminRequired,
	})
}

var _ Client = (*HTTPClient)(nil)
