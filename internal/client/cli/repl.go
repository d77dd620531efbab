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

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Verify(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Balance(ctx context.Context) error
	Transactions(ctx context.Context, limit int) error
	Investments(ctx context.Context) error
	Cards(ctx context.Context) error
	Profile(ctx context.Context) error
	Preferences(ctx context.Context) error
	Toasts(ctx context.Context) error
	Dismiss(ctx context.Context, id int) error
	ClearToasts(ctx context.Context) error
	Go(ctx context.Context, target string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  help, register, login, toasts, dismiss <id>, clear, go <route>, exit
//
//	Logged in, additionally:
//	  whoami, verify, dashboard, balance, transactions [n], investments,
//	  cards, profile, prefs, logout
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bank %s> ", statusFn()))
		line, err := reader.ReadString('\n')
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
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, verify, (d)ashboard, balance, transactions [n], investments, cards, profile, prefs, toasts, dismiss <id>, clear, go <route>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, toasts, dismiss <id>, clear, go <route>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "balance":
			_ = a.Balance(ctx)

		case "transactions":
			limit := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					printlnFn("Usage: transactions [n]")
					continue
				}
				limit = n
			}
			_ = a.Transactions(ctx, limit)

		case "investments":
			_ = a.Investments(ctx)

		case "cards":
			_ = a.Cards(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "prefs":
			_ = a.Preferences(ctx)

		case "toasts":
			_ = a.Toasts(ctx)

		case "dismiss":
			if len(args) == 0 {
				printlnFn("Usage: dismiss <id>")
				continue
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: dismiss <id>")
				continue
			}
			_ = a.Dismiss(ctx, id)

		case "clear":
			_ = a.ClearToasts(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <route>")
				continue
			}
			_ = a.Go(ctx, args[0])

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
