// Package cli provides the interactive brewkeeper command-line client.
//
// It wires configuration, the session store, the API client and services,
// and runs a REPL over the page models in package views. Typical flow:
// restore the saved session (or prompt for credentials), start a background
// connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Equipment profile editing
//   - Browse, create, edit, rate and annotate recipes
//   - Master recipe catalog management for administrators
//
// Commands that need a session run behind guard.Guard; admin commands behind
// guard.AdminGuard. When a page navigates, the REPL follows the route.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
