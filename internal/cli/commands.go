package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	playersapp "github.com/preston-bernstein/nba-data-client/internal/app/players"
	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
	"github.com/preston-bernstein/nba-data-client/internal/paging"
)

const moreCommand = ":more"

func (c *CLI) teams(ctx context.Context, args []string) error {
	fs := c.flagSet("teams")
	sortRaw := fs.String("sort", string(teams.SortByName), "sort key: name, city or conference")
	if err := parse(fs, args); err != nil {
		return err
	}
	key, ok := teams.ParseSortKey(*sortRaw)
	if !ok {
		return c.usageError("unknown sort key %q", *sortRaw)
	}

	res := c.svc.Teams.SortedTeams(ctx, key)
	if !res.Ok() {
		return res.Err()
	}
	c.write(func(w io.Writer) { printTeams(w, res.Value()) })
	return nil
}

func (c *CLI) games(ctx context.Context, args []string) error {
	fs := c.flagSet("games")
	teamID := fs.Int("team", 0, "team id (required)")
	pages := fs.Int("pages", 1, "number of pages to load")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *teamID <= 0 {
		return c.usageError("-team must be a positive team id")
	}
	if *pages < 1 {
		return c.usageError("-pages must be at least 1")
	}

	pager := c.svc.Games.TeamGames(*teamID)
	defer pager.Close()
	snap, err := loadPages(ctx, pager, *pages)
	if err != nil {
		return err
	}
	c.write(func(w io.Writer) {
		printGames(w, snap.Items)
		printMore(w, snap.HasMore)
	})
	return nil
}

func (c *CLI) players(ctx context.Context, args []string) error {
	fs := c.flagSet("players")
	query := fs.String("search", "", "name to search for (required)")
	pages := fs.Int("pages", 1, "number of pages to load")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *pages < 1 {
		return c.usageError("-pages must be at least 1")
	}

	res := c.svc.Players.SearchPlayers(*query)
	if !res.Ok() {
		return res.Err()
	}
	pager := res.Value()
	defer pager.Close()
	snap, err := loadPages(ctx, pager, *pages)
	if err != nil {
		return err
	}
	c.write(func(w io.Writer) {
		printPlayers(w, snap.Items)
		printMore(w, snap.HasMore)
	})
	return nil
}

// search feeds stdin lines into a debounced search until EOF, then fires
// whatever query is still pending.
func (c *CLI) search(ctx context.Context, args []string) error {
	fs := c.flagSet("search")
	if err := parse(fs, args); err != nil {
		return err
	}

	s := playersapp.NewSearch(c.svc.Players, playersapp.SearchConfig{
		Clock:    c.opts.Clock,
		Delay:    c.opts.Debounce,
		Logger:   c.opts.Logger,
		OnUpdate: func(u playersapp.Update) { c.write(func(w io.Writer) { printUpdate(w, u) }) },
	})
	defer s.Close()

	scanner := bufio.NewScanner(c.opts.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == moreCommand {
			s.Flush()
			if !s.LoadMore(ctx) {
				c.write(func(w io.Writer) { fmt.Fprintln(w, "no more results") })
			}
			continue
		}
		s.SetQuery(line)
	}
	s.Flush()
	return scanner.Err()
}

// loadPages loads up to n pages, stopping early when the sequence ends.
func loadPages[T any](ctx context.Context, pager *paging.Pager[T], n int) (paging.Snapshot[T], error) {
	for i := 0; i < n; i++ {
		if !pager.LoadMore(ctx) {
			break
		}
		if snap := pager.Snapshot(); snap.Err != nil {
			return snap, snap.Err
		}
	}
	return pager.Snapshot(), nil
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return errUsage
	}
	return nil
}

func printUpdate(w io.Writer, u playersapp.Update) {
	if u.Err != nil {
		fmt.Fprintf(w, "search %q failed (%s): %s\n", u.Query, u.Err.Kind, u.Err.Message)
		return
	}
	fmt.Fprintf(w, "search %q: %d players\n", u.Query, len(u.Snapshot.Items))
	printPlayers(w, u.Snapshot.Items)
	printMore(w, u.Snapshot.HasMore)
}
