package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	inAdminArea() bool

	Home(ctx context.Context) error
	About(ctx context.Context) error
	Projects(ctx context.Context) error
	Contact(ctx context.Context) error
	Open(ctx context.Context, location string) error

	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Contacts(ctx context.Context) error
	DeleteContact(ctx context.Context, id int) error
	EditHome(ctx context.Context) error
	EditAbout(ctx context.Context) error
	AddProject(ctx context.Context) error
	EditProject(ctx context.Context, id int) error
	DeleteProject(ctx context.Context, id int) error
	Discard(ctx context.Context) error
}

const (
	helpPublic = "Available commands: home, about, projects, contact, open <location>, login, exit"
	helpAdmin  = "Available commands: dashboard, contacts, delcontact <id>, edithome, editabout, " +
		"addproject, editproject <id>, delproject <id>, discard, home, about, projects, contact, open <location>, logout, exit"
)

// runREPL reads commands from in until EOF, "exit" or "quit".
//
// Command handlers report their own failures to the user; their errors are
// not acted on here. Commands taking an id print a usage line when the id
// is missing or not a number.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portfolio %s> ", statusFn()))

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.inAdminArea() && a.isLoggedIn() {
				printlnFn(helpAdmin)
			} else {
				printlnFn(helpPublic)
			}

		case "home":
			_ = a.Home(ctx)
		case "about":
			_ = a.About(ctx)
		case "projects":
			_ = a.Projects(ctx)
		case "contact":
			_ = a.Contact(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <location>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)
		case "contacts":
			_ = a.Contacts(ctx)
		case "edithome":
			_ = a.EditHome(ctx)
		case "editabout":
			_ = a.EditAbout(ctx)
		case "addproject":
			_ = a.AddProject(ctx)
		case "discard":
			_ = a.Discard(ctx)

		case "delcontact", "editproject", "delproject":
			id, ok := parseID(args)
			if !ok {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "delcontact":
				_ = a.DeleteContact(ctx, id)
			case "editproject":
				_ = a.EditProject(ctx, id)
			default:
				_ = a.DeleteProject(ctx, id)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func parseID(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
