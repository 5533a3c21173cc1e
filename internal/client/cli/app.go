// Package cli implements the itemvault command-line client: login with a
// cached bearer token, whoami and item management.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avasiljevs/itemvault/internal/client/api"
	"github.com/avasiljevs/itemvault/internal/client/config"
)

const usage = `usage: itemvault <command>

commands:
  login         authenticate and cache a bearer token
  whoami        show the currently authenticated user
  items list    list your items
  items add     create an item
  items rm ID   delete an item by id
`

type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.New(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run dispatches a single command. args is os.Args without the binary name
// and with config flags already consumed by the config package.
func (a *App) Run(ctx context.Context, args []string) error {
	args = stripFlags(args)
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	switch args[0] {
	case "login":
		return a.Login(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "items":
		return a.runItems(ctx, args[1:])
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) runItems(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: items list|add|rm")
	}
	switch args[0] {
	case "list":
		return a.ListItems(ctx)
	case "add":
		return a.AddItem(ctx)
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: items rm ID")
		}
		return a.RemoveItem(ctx, args[1])
	default:
		return fmt.Errorf("unknown items command %q", args[0])
	}
}

// stripFlags drops "-flag value" and "-flag=value" pairs so only the
// command words remain.
func stripFlags(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}
