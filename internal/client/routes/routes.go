// Package routes names the client's navigation targets and provides a
// Navigator that records them for the REPL to follow.
package routes

import (
	"net/url"
	"strings"
	"sync"
)

const (
	Home         = "/"
	Login        = "/login"
	Register     = "/register"
	Equipment    = "/equipment"
	NewRecipe    = "/recipes/new"
	AdminRecipes = "/admin/recipes"
	AdminNew     = "/admin/recipes/new"
)

// Route kinds returned by Parse.
const (
	KindUnknown = iota
	KindHome
	KindLogin
	KindRegister
	KindEquipment
	KindNewRecipe
	KindRecipe
	KindEditRecipe
	KindAdminRecipes
	KindAdminNew
	KindAdminEdit
)

func Recipe(id string) string { return "/recipes/" + url.PathEscape(id) }

func EditRecipe(id string) string { return Recipe(id) + "/edit" }

func AdminEdit(id string) string { return AdminRecipes + "/" + url.PathEscape(id) + "/edit" }

// Match is a parsed route.
type Match struct {
	Kind int
	ID   string
}

// Parse resolves route into one of the known kinds. Unknown routes report
// KindUnknown.
func Parse(route string) Match {
	switch route {
	case Home, "":
		return Match{Kind: KindHome}
	case Login:
		return Match{Kind: KindLogin}
	case Register:
		return Match{Kind: KindRegister}
	case Equipment:
		return Match{Kind: KindEquipment}
	case NewRecipe:
		return Match{Kind: KindNewRecipe}
	case AdminRecipes:
		return Match{Kind: KindAdminRecipes}
	case AdminNew:
		return Match{Kind: KindAdminNew}
	}

	parts := strings.Split(strings.Trim(route, "/"), "/")
	id := func(s string) string {
		if v, err := url.PathUnescape(s); err == nil {
			return v
		}
		return s
	}

	switch {
	case len(parts) == 2 && parts[0] == "recipes":
		return Match{Kind: KindRecipe, ID: id(parts[1])}
	case len(parts) == 3 && parts[0] == "recipes" && parts[2] == "edit":
		return Match{Kind: KindEditRecipe, ID: id(parts[1])}
	case len(parts) == 4 && parts[0] == "admin" && parts[1] == "recipes" && parts[3] == "edit":
		return Match{Kind: KindAdminEdit, ID: id(parts[2])}
	}
	return Match{Kind: KindUnknown}
}

// Navigator moves the client to another route.
type Navigator interface {
	Navigate(route string)
}

// Recorder is a Navigator that keeps the full history and the most recent
// route not yet followed.
type Recorder struct {
	mu      sync.Mutex
	history []string
	pending string
	has     bool
}

func (r *Recorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, route)
	r.pending, r.has = route, true
}

// Take returns the pending route and clears it.
func (r *Recorder) Take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.pending, r.has
	r.pending, r.has = "", false
	return route, ok
}

func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}
