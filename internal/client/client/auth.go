package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/brewkeeper/internal/client/wire"
)

// Ping probes reachability through the public equipment catalog.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, request{op: "ping", method: http.MethodGet, path: "/equipment"})
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, request{
		op:     "register",
		method: http.MethodPost,
		path:   "/users",
		body:   wire.NewRegisterRequest(username, password),
	})
}

// Login returns the bearer token issued by the server, which may be empty
// on servers that do not issue one.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp wire.LoginResponse
	err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/login",
		body:   wire.LoginRequest{Username: username, Password: password},
		out:    &resp,
	})
	if err != nil {
		return "", err
	}
	return resp.BearerToken(), nil
}

// Role asks the server for the user's role. It is the only source of truth
// for admin status.
func (c *HTTPClient) Role(ctx context.Context, username string) (string, error) {
	const op = "role"
	if err := identity(op, username); err != nil {
		return "", err
	}
	var resp wire.RoleResponse
	err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/users/" + seg(username) + "/role",
		auth:   true,
		out:    &resp,
	})
	return resp.Role, err
}

func (c *HTTPClient) EquipmentCatalog(ctx context.Context) ([]string, error) {
	var resp wire.EquipmentResponse
	err := c.do(ctx, request{op: "equipment catalog", method: http.MethodGet, path: "/equipment", out: &resp})
	return resp.Equipment, err
}

func (c *HTTPClient) UserEquipment(ctx context.Context, username string) ([]string, error) {
	const op = "user equipment"
	if err := identity(op, username); err != nil {
		return nil, err
	}
	var resp wire.EquipmentResponse
	err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/users/" + seg(username) + "/equipment",
		out:    &resp,
	})
	return resp.Equipment, err
}

func (c *HTTPClient) SaveUserEquipment(ctx context.Context, username string, items []string) ([]string, error) {
	const op = "save equipment"
	if err := identity(op, username); err != nil {
		return nil, err
	}
	if items == nil {
		items = []string{}
	}
	var resp wire.EquipmentResponse
	err := c.do(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   "/users/" + seg(username) + "/equipment",
		body:   wire.EquipmentRequest{Utensils: items},
		auth:   true,
		out:    &resp,
	})
	return resp.Equipment, err
}
