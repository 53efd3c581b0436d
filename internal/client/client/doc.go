// Package client talks to the recipe REST API.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface), one method per endpoint:
//     account, equipment, personal recipes with ratings and notes, cloning,
//     and the admin master-recipe catalog.
//  2. An HTTP implementation (see HTTPClient) that attaches the bearer token
//     from a TokenSource, tags each request with an X-Request-ID, throttles
//     with a token bucket and maps failures to APIError values.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     sqlite session database, using embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns an *APIError whose message is safe to show to
// the user. Its sentinel can be matched with errors.Is: ErrUnavailable,
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrValidation,
// ErrRequestFailed, ErrNoSession. A 403 carries the per-endpoint denial
// message instead of the server text.
//
// Calls are never retried. HTTPClient is safe for concurrent use.
package client
