// Package models defines the client-side domain types: recipes, equipment
// selections and the session snapshot. Field names here are the client's own;
// server field names live in the wire package.
package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRequired      = errors.New("is required")
	ErrRatingRange   = errors.New("rating must be between 1 and 5")
	ErrNoteIndex     = errors.New("note index out of range")
	ErrEmptyNote     = errors.New("note is empty")
	ErrUnknownRecipe = errors.New("recipe id is empty")
)

const (
	MinRating = 1
	MaxRating = 5
)

// Recipe is either a personal recipe or a shared master recipe, told apart by
// IsMasterRecipe. UserRating is 0 when the user has not rated it.
type Recipe struct {
	ID             string
	Title          string
	Description    string
	Equipment      []string
	Ingredients    []string
	Instructions   []string
	UserRating     int
	UserNotes      []string
	IsMasterRecipe bool
}

// RecipeForm is the editable part of a recipe. Rating and notes are never
// part of it, so a clone starts with fresh ones.
type RecipeForm struct {
	Title        string
	Description  string
	Equipment    []string
	Ingredients  []string
	Instructions []string
}

// Form copies the editable fields of r.
func (r Recipe) Form() RecipeForm {
	return RecipeForm{
		Title:        r.Title,
		Description:  r.Description,
		Equipment:    append([]string(nil), r.Equipment...),
		Ingredients:  append([]string(nil), r.Ingredients...),
		Instructions: append([]string(nil), r.Instructions...),
	}
}

// Validate checks the required fields only.
func (f RecipeForm) Validate() error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return fmt.Errorf("title %w", ErrRequired)
	case strings.TrimSpace(f.Description) == "":
		return fmt.Errorf("description %w", ErrRequired)
	case len(f.Ingredients) == 0:
		return fmt.Errorf("ingredients %w", ErrRequired)
	case len(f.Instructions) == 0:
		return fmt.Errorf("instructions %w", ErrRequired)
	}
	return nil
}

// ValidateRating accepts 1..5 stars.
func ValidateRating(stars int) error {
	if stars < MinRating || stars > MaxRating {
		return ErrRatingRange
	}
	return nil
}

// RemoveNoteAt returns a new slice without notes[i]; the input is untouched
// and the remaining notes keep their order.
func RemoveNoteAt(notes []string, i int) ([]string, error) {
	if i < 0 || i >= len(notes) {
		return nil, ErrNoteIndex
	}
	out := make([]string, 0, len(notes)-1)
	out = append(out, notes[:i]...)
	return append(out, notes[i+1:]...), nil
}

// ParseLines splits multi-line input into trimmed non-empty lines, the way
// ingredient and instruction lists are entered.
func ParseLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
