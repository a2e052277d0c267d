package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Reload(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Chart(ctx context.Context) error
	Quote(ctx context.Context) error
	React(ctx context.Context, liked bool) error
	Reflect(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: register, login, quote, like, dislike, theme <name>, help, exit"
	helpUser  = "Available commands: list [thoughts|quotes], search <text>, filter <category|-> <mood|->, " +
		"add, edit <id>, delete <id>, reload, stats, chart, quote, like, dislike, reflect, " +
		"theme <name>, export [path|s3://bucket/key], logout, help, exit"
)

// runREPL reads one command per line from r and dispatches it to a. It
// returns on EOF or on "exit"/"quit". Handler errors are printed and the
// loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("journal (%s)> ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "filter":
			cmdErr = a.Filter(ctx, args)
		case "reload":
			cmdErr = a.Reload(ctx)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "chart":
			cmdErr = a.Chart(ctx)
		case "quote", "next":
			cmdErr = a.Quote(ctx)
		case "like":
			cmdErr = a.React(ctx, true)
		case "dislike":
			cmdErr = a.React(ctx, false)
		case "reflect":
			cmdErr = a.Reflect(ctx)
		case "theme":
			cmdErr = a.Theme(ctx, args)
		case "export":
			cmdErr = a.Export(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
