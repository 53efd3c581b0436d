package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Equipment(ctx context.Context) error
	Recipes(ctx context.Context) error
	Show(ctx context.Context, id string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Rate(ctx context.Context, id, stars string) error
	Note(ctx context.Context, id string) error
	DeleteNote(ctx context.Context, id, index string) error
	Clone(ctx context.Context, id string) error

	Admin(ctx context.Context) error
	AdminNew(ctx context.Context) error
	AdminEdit(ctx context.Context, id string) error
	AdminDelete(ctx context.Context, id string) error

	// Follow runs the page for any route a command navigated to.
	Follow(ctx context.Context)
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpUser      = "Available commands: recipes|l, show <id>, new, edit <id>, delete <id>, rate <id> <1-5>, " +
		"note <id>, delnote <id> <n>, clone <id>, equipment, whoami, logout, exit"
	helpAdmin = "Admin commands: admin, admin-new, admin-edit <id>, admin-delete <id>"
)

// runREPL starts a simple read–eval–print loop for the brewkeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Commands that take arguments
// print their usage when arguments are missing. After every command the
// REPL follows any navigation the command requested. The loop exits on
// EOF or when the user types "exit" or "quit".
//
// Commands are read from the same reader the command prompts use, so a
// pasted block of lines reaches each prompt in order.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("brew %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		need := func(n int, usage string) bool {
			if len(args) < n {
				printlnFn("Usage:", usage)
				return false
			}
			return true
		}

		switch cmd {
		case "help":
			if !a.isLoggedIn() {
				printlnFn(helpAnonymous)
				break
			}
			printlnFn(helpUser)
			if a.isAdmin() {
				printlnFn(helpAdmin)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "equipment":
			_ = a.Equipment(ctx)

		case "l", "recipes":
			_ = a.Recipes(ctx)

		case "show":
			if need(1, "show <id>") {
				_ = a.Show(ctx, args[0])
			}

		case "new":
			_ = a.New(ctx)

		case "edit":
			if need(1, "edit <id>") {
				_ = a.Edit(ctx, args[0])
			}

		case "delete":
			if need(1, "delete <id>") {
				_ = a.Delete(ctx, args[0])
			}

		case "rate":
			if need(2, "rate <id> <1-5>") {
				_ = a.Rate(ctx, args[0], args[1])
			}

		case "note":
			if need(1, "note <id>") {
				_ = a.Note(ctx, args[0])
			}

		case "delnote":
			if need(2, "delnote <id> <n>") {
				_ = a.DeleteNote(ctx, args[0], args[1])
			}

		case "clone":
			if need(1, "clone <id>") {
				_ = a.Clone(ctx, args[0])
			}

		case "admin":
			_ = a.Admin(ctx)

		case "admin-new":
			_ = a.AdminNew(ctx)

		case "admin-edit":
			if need(1, "admin-edit <id>") {
				_ = a.AdminEdit(ctx, args[0])
			}

		case "admin-delete":
			if need(1, "admin-delete <id>") {
				_ = a.AdminDelete(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.Follow(ctx)
	}
}
