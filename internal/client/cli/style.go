package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#9E9E9E")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle   = lipgloss.NewStyle().Foreground(destructive)
	successStyle = lipgloss.NewStyle().Foreground(accent)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300")).Bold(true)
)

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > models.MaxRating {
		n = models.MaxRating
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", models.MaxRating-n)
}

func kind(r models.Recipe) string {
	if r.IsMasterRecipe {
		return badgeStyle.Render("master")
	}
	return mutedStyle.Render("personal")
}

// renderRecipeLine is one row of a recipe list.
func renderRecipeLine(r models.Recipe) string {
	return fmt.Sprintf("[%s] %s  %s  %s", r.ID, titleStyle.Render(r.Title), stars(r.UserRating), kind(r))
}

func renderRecipeList(header string, list []models.Recipe, empty string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("  " + empty))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range list {
		b.WriteString("  ")
		b.WriteString(renderRecipeLine(r))
		b.WriteString("\n")
	}
	return b.String()
}

func numbered(b *strings.Builder, items []string) {
	for i, it := range items {
		fmt.Fprintf(b, "  %d. %s\n", i+1, it)
	}
}

// renderRecipe is the detail view.
func renderRecipe(r models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(r.Title), kind(r))
	if r.Description != "" {
		b.WriteString(r.Description + "\n")
	}
	fmt.Fprintf(&b, "Rating: %s\n", stars(r.UserRating))
	if len(r.Equipment) > 0 {
		fmt.Fprintf(&b, "Equipment: %s\n", strings.Join(r.Equipment, ", "))
	}

	b.WriteString(headerStyle.Render("Ingredients") + "\n")
	numbered(&b, r.Ingredients)
	b.WriteString(headerStyle.Render("Instructions") + "\n")
	numbered(&b, r.Instructions)

	b.WriteString(headerStyle.Render("Notes") + "\n")
	if len(r.UserNotes) == 0 {
		b.WriteString(mutedStyle.Render("  no notes yet") + "\n")
	}
	numbered(&b, r.UserNotes)
	return b.String()
}

// renderEquipment lists the catalog with a checkbox per item.
func renderEquipment(catalog []string, selected func(string) bool) string {
	var b strings.Builder
	for i, item := range catalog {
		box := "[ ]"
		if selected(item) {
			box = successStyle.Render("[x]")
		}
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, box, item)
	}
	return b.String()
}
