// Package common contains constants and small helpers shared by the
// brewkeeper client layers.
package common

// Outbound request headers.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
)

// Session keys persisted in the local metadata store.
const (
	SessionKeyUsername = "username"
	SessionKeyToken    = "token"
	SessionKeyIsAdmin  = "is_admin"
)
