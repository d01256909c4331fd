// Package cli implements the nba command line client.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	gamesapp "github.com/preston-bernstein/nba-data-client/internal/app/games"
	playersapp "github.com/preston-bernstein/nba-data-client/internal/app/players"
	teamsapp "github.com/preston-bernstein/nba-data-client/internal/app/teams"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage")

// Services groups the use cases the commands call.
type Services struct {
	Teams   *teamsapp.Service
	Games   *gamesapp.Service
	Players *playersapp.Service
}

// Options configures IO and timing. Zero values use the process streams,
// the real clock and the default debounce delay.
type Options struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Clock    clockwork.Clock
	Debounce time.Duration
	Logger   *slog.Logger
}

// CLI dispatches subcommands.
type CLI struct {
	svc  Services
	opts Options

	outMu sync.Mutex
}

func New(svc Services, opts Options) *CLI {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &CLI{svc: svc, opts: opts}
}

// Run executes args[0] with the remaining args and returns a process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		c.usage()
		return exitUsage
	}

	var err error
	switch args[0] {
	case "teams":
		err = c.teams(ctx, args[1:])
	case "games":
		err = c.games(ctx, args[1:])
	case "players":
		err = c.players(ctx, args[1:])
	case "search":
		err = c.search(ctx, args[1:])
	case "help", "-h", "--help":
		c.usage()
		return exitOK
	default:
		fmt.Fprintf(c.opts.Stderr, "unknown command %q\n", args[0])
		c.usage()
		return exitUsage
	}

	var resErr *result.Error
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.As(err, &resErr):
		fmt.Fprintf(c.opts.Stderr, "error (%s): %s\n", resErr.Kind, resErr.Message)
		if resErr.Kind == result.KindValidation {
			return exitUsage
		}
		return exitFailure
	default:
		fmt.Fprintf(c.opts.Stderr, "error: %v\n", err)
		return exitFailure
	}
}

func (c *CLI) usage() {
	fmt.Fprint(c.opts.Stderr, `usage: nba <command> [flags]

commands:
  teams   [-sort name|city|conference]   list every team
  games   -team id [-pages n]            list a team's games
  players -search q [-pages n]           search players by name
  search                                 read queries from stdin, one per line; ":more" loads the next page
`)
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.opts.Stderr)
	return fs
}

// usageError reports msg and marks err as a usage failure.
func (c *CLI) usageError(format string, args ...any) error {
	fmt.Fprintf(c.opts.Stderr, format+"\n", args...)
	return errUsage
}

// write serializes output from the search goroutines.
func (c *CLI) write(fn func(w io.Writer)) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fn(c.opts.Stdout)
}
