package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

type Utensil struct {
	Utensil string `json:"Utensil"`
}

// RecipePayload is the body of every recipe write: create, update, clone and
// the admin variants.
type RecipePayload struct {
	Title       string    `json:"Title"`
	Description string    `json:"Description"`
	Utensils    []Utensil `json:"Utensils"`
	Recipie     string    `json:"Recipie"`
	Ingredients []string  `json:"Ingredients"`
}

func FromForm(f models.RecipeForm) RecipePayload {
	p := RecipePayload{
		Title:       f.Title,
		Description: f.Description,
		Utensils:    make([]Utensil, 0, len(f.Equipment)),
		Recipie:     strings.Join(f.Instructions, "\n"),
		Ingredients: append([]string{}, f.Ingredients...),
	}
	for _, e := range f.Equipment {
		p.Utensils = append(p.Utensils, Utensil{Utensil: e})
	}
	return p
}

// ID decodes a JSON number or string into its decimal/string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

type RecipeOut struct {
	ID             ID       `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Equipment      []string `json:"equipment"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	UserRating     int      `json:"userRating"`
	UserNotes      []string `json:"userNotes"`
	IsMasterRecipe bool     `json:"isMasterRecipe"`
}

func (r RecipeOut) ToModel() models.Recipe {
	return models.Recipe{
		ID:             string(r.ID),
		Title:          r.Title,
		Description:    r.Description,
		Equipment:      r.Equipment,
		Ingredients:    r.Ingredients,
		Instructions:   r.Instructions,
		UserRating:     r.UserRating,
		UserNotes:      r.UserNotes,
		IsMasterRecipe: r.IsMasterRecipe,
	}
}

type RecipesOut struct {
	Recipes []RecipeOut `json:"recipes"`
}

// DecodeRecipeList accepts a bare array or an object with a "recipes" array.
// The personal list uses the latter, the master listings the former.
func DecodeRecipeList(data []byte) ([]models.Recipe, error) {
	data = bytes.TrimSpace(data)

	var items []RecipeOut
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
	} else {
		var wrapped RecipesOut
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		items = wrapped.Recipes
	}

	out := make([]models.Recipe, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToModel())
	}
	return out, nil
}

type CreatedResponse struct {
	ID ID `json:"id"`
}

type EquipmentRequest struct {
	Utensils []string `json:"Utensils"`
}

type EquipmentResponse struct {
	Equipment []string `json:"equipment"`
}

type RatingRequest struct {
	Rating int `json:"rating"`
}

type NoteRequest struct {
	Note string `json:"note"`
}
