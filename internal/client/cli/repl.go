package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Photos(ctx context.Context) error
	Feed(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Upload(ctx context.Context) error
	DeletePhoto(ctx context.Context, id string) error
	Comments(ctx context.Context, pictureID string) error
	Comment(ctx context.Context, pictureID string) error
	Uncomment(ctx context.Context, commentID string) error
	EditComment(ctx context.Context, commentID string) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

const (
	helpLoggedIn  = "Available commands: photos, feed, show <id>, upload, delete <id>, comments <id>, comment <id>, uncomment <id>, editcomment <id>, whoami, logout, deleteaccount, exit"
	helpLoggedOut = "Available commands: register, login, comments <id>, exit"
)

// runREPL starts a simple read–eval–print loop for the picshare CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands taking an argument (show, delete, comments, comment, uncomment,
// editcomment) expect the ID on the same line.
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("picshare %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		firstArg := func(usage string) (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage: " + usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "photos":
			_ = a.Photos(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "show":
			if id, ok := firstArg("show <picture id>"); ok {
				_ = a.Show(ctx, id)
			}

		case "upload":
			_ = a.Upload(ctx)

		case "delete":
			if id, ok := firstArg("delete <picture id>"); ok {
				_ = a.DeletePhoto(ctx, id)
			}

		case "comments":
			if id, ok := firstArg("comments <picture id>"); ok {
				_ = a.Comments(ctx, id)
			}

		case "comment":
			if id, ok := firstArg("comment <picture id>"); ok {
				_ = a.Comment(ctx, id)
			}

		case "uncomment":
			if id, ok := firstArg("uncomment <comment id>"); ok {
				_ = a.Uncomment(ctx, id)
			}

		case "editcomment":
			if id, ok := firstArg("editcomment <comment id>"); ok {
				_ = a.EditComment(ctx, id)
			}

		case "logout":
			_ = a.Logout(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
