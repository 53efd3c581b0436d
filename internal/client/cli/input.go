package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/brewkeeper/internal/client/models"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// splitList parses a comma separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, it := range strings.Split(s, ",") {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// inputRecipeForm asks for every recipe field, showing the current value.
// An empty answer keeps it. Equipment must come from catalog.
func inputRecipeForm(reader *bufio.Reader, w io.Writer, cur models.RecipeForm, catalog []string) (models.RecipeForm, error) {
	form := cur

	text := func(prompt string, dst *string) error {
		if *dst != "" {
			prompt = fmt.Sprintf("%s [%s]", prompt, *dst)
		}
		v, err := getSimpleText(reader, prompt, w)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = v
		}
		return nil
	}
	lines := func(prompt string, dst *[]string) error {
		if len(*dst) > 0 {
			prompt = fmt.Sprintf("%s (current: %s)", prompt, strings.Join(*dst, "; "))
		}
		v, err := getMultiline(reader, prompt, w)
		if err != nil {
			return err
		}
		if parsed := models.ParseLines(v); len(parsed) > 0 {
			*dst = parsed
		}
		return nil
	}

	if err := text("Title", &form.Title); err != nil {
		return cur, err
	}
	if err := text("Description", &form.Description); err != nil {
		return cur, err
	}

	equipment := strings.Join(form.Equipment, ", ")
	if err := text(fmt.Sprintf("Equipment, comma separated (from: %s)", strings.Join(catalog, ", ")), &equipment); err != nil {
		return cur, err
	}
	sel := models.NewSelection(splitList(equipment)...)
	if err := sel.SubsetOf(catalog); err != nil {
		return cur, err
	}
	form.Equipment = sel.Items()

	if err := lines("Ingredients, one per line", &form.Ingredients); err != nil {
		return cur, err
	}
	if err := lines("Instructions, one step per line", &form.Instructions); err != nil {
		return cur, err
	}
	return form, nil
}
