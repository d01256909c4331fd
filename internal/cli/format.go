package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/preston-bernstein/nba-data-client/internal/domain/games"
	"github.com/preston-bernstein/nba-data-client/internal/domain/players"
	"github.com/preston-bernstein/nba-data-client/internal/domain/teams"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printTeams(w io.Writer, items []teams.Team) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tABBR\tTEAM\tCITY\tCONFERENCE\tDIVISION")
	for _, t := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Abbreviation, t.FullName, t.City, t.Conference, t.Division)
	}
	_ = tw.Flush()
}

func printGames(w io.Writer, items []games.Game) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tVISITOR\tSCORE\tHOME\tSTATUS")
	for _, g := range items {
		status := g.Status
		if g.Time != nil && *g.Time != "" {
			status += " " + *g.Time
		}
		if g.Postseason {
			status += " (playoffs)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d-%d\t%s\t%s\n",
			g.ID, g.Date, g.VisitorTeam.Abbreviation, g.VisitorTeamScore, g.HomeTeamScore, g.HomeTeam.Abbreviation, status)
	}
	_ = tw.Flush()
}

func printPlayers(w io.Writer, items []players.Player) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPOS\tTEAM\tHEIGHT\tWEIGHT")
	for _, p := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.FullName(), orDash(p.Position), orDash(p.Team.Abbreviation), unit(p.HeightCm, "cm"), unit(p.WeightKg, "kg"))
	}
	_ = tw.Flush()
}

func printMore(w io.Writer, hasMore bool) {
	if hasMore {
		fmt.Fprintln(w, "more results available")
	}
}

func unit(v *int, suffix string) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v) + " " + suffix
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
