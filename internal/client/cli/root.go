package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/resumatch/resumatch-cli/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Home(ctx context.Context) error
	Navigate(ctx context.Context, view string) error
	Jobs(ctx context.Context, query string) error
	Job(ctx context.Context, jobID string) error
	Apply(ctx context.Context, jobID string) error
	Upload(ctx context.Context, path string) error
	PostJob(ctx context.Context) error
}

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	if s.Phase != session.PhaseAuthenticated {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.User.Name, s.User.Role)
}

// Root prints the banner, shows the initial view and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("ResuMatch CLI (type 'help' for commands)")
	_ = a.Home(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// runREPL starts a read–eval–print loop for the ResuMatch CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current identity (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - home           — go to the role home view
//	  - jobs [query]   — browse listings (with match scores for job seekers)
//	  - job <id>       — show one posting
//	  - apply <id>     — apply to a posting (job seekers)
//	  - dashboard      — job seeker home
//	  - upload <file>  — upload a resume (job seekers)
//	  - employer       — employer home
//	  - postjob        — create a posting (employers)
//	  - whoami         — show the current identity
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rm> %s > ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, jobs [query], job <id>, apply <id>, dashboard, upload <file>, employer, postjob, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "home":
			_ = a.Home(ctx)

		case "jobs":
			_ = a.Jobs(ctx, strings.Join(args, " "))

		case "job":
			if len(args) == 0 {
				printlnFn("Usage: job <id>")
				continue
			}
			_ = a.Job(ctx, args[0])

		case "apply":
			if len(args) == 0 {
				printlnFn("Usage: apply <id>")
				continue
			}
			_ = a.Apply(ctx, args[0])

		case "dashboard":
			_ = a.Navigate(ctx, "/dashboard")

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <file>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "employer":
			_ = a.Navigate(ctx, "/employer")

		case "postjob":
			_ = a.PostJob(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
