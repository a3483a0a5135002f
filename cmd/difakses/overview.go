package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/difakses/difakses-go/model"
)

// overviewSnapshot is one combined read of the public catalogues. The
// four listings are independent, so they are fetched concurrently.
type overviewSnapshot struct {
	Events      []model.Event           `json:"events"`
	Communities []model.Community       `json:"communities"`
	Locations   []model.TherapyLocation `json:"locations"`
	Articles    []model.Article         `json:"articles"`
}

func runOverview(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("overview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		limit  int
		asJSON bool
		query  string
	)
	fs.IntVar(&limit, "limit", 5, "Entries per catalogue")
	fs.BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	fs.StringVar(&query, "query", "", "JMESPath expression applied to the JSON output (implies --json)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateQuery(query); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	snapshot, err := fetchOverview(ctx, cmdCtx, limit)
	if err != nil {
		return err
	}

	if asJSON || query != "" {
		return renderJSON(os.Stdout, snapshot, query)
	}
	return printOverview(snapshot)
}

func fetchOverview(ctx context.Context, cmdCtx *commandContext, limit int) (*overviewSnapshot, error) {
	var snapshot overviewSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp := cmdCtx.Client.Events.List(gctx, model.EventListOptions{Limit: limit})
		if resp.Failed() {
			return fmt.Errorf("list events: %s", resp.Err)
		}
		snapshot.Events = resp.Data
		return nil
	})
	g.Go(func() error {
		resp := cmdCtx.Client.Communities.List(gctx, model.CommunityListOptions{Limit: limit})
		if resp.Failed() {
			return fmt.Errorf("list communities: %s", resp.Err)
		}
		snapshot.Communities = resp.Data
		return nil
	})
	g.Go(func() error {
		resp := cmdCtx.Client.Locations.List(gctx, model.LocationListOptions{Page: 1, PerPage: limit})
		if resp.Failed() {
			return fmt.Errorf("list locations: %s", resp.Err)
		}
		snapshot.Locations = resp.Data
		return nil
	})
	g.Go(func() error {
		resp := cmdCtx.Client.Articles.List(gctx, model.ArticleListOptions{Page: 1, PerPage: limit})
		if resp.Failed() {
			return fmt.Errorf("list articles: %s", resp.Err)
		}
		snapshot.Articles = resp.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func printOverview(snapshot *overviewSnapshot) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	if err := writeln(tw, "Events"); err != nil {
		return fmt.Errorf("write overview: %w", err)
	}
	for _, ev := range snapshot.Events {
		if err := writef(tw, "  %s\t%s\t%s\n", truncate(ev.Title, 40), ev.Mode, ev.StartsAt); err != nil {
			return fmt.Errorf("write overview event: %w", err)
		}
	}

	if err := writeln(tw, "Communities"); err != nil {
		return fmt.Errorf("write overview: %w", err)
	}
	for _, com := range snapshot.Communities {
		visibility := "public"
		if com.IsPrivate {
			visibility = "private"
		}
		if err := writef(tw, "  %s\t%s\t%d members\n", truncate(com.Name, 40), visibility, com.MemberCount); err != nil {
			return fmt.Errorf("write overview community: %w", err)
		}
	}

	if err := writeln(tw, "Locations"); err != nil {
		return fmt.Errorf("write overview: %w", err)
	}
	for _, loc := range snapshot.Locations {
		if err := writef(tw, "  %s\t%s\t\n", truncate(loc.Name, 40), loc.City); err != nil {
			return fmt.Errorf("write overview location: %w", err)
		}
	}

	if err := writeln(tw, "Articles"); err != nil {
		return fmt.Errorf("write overview: %w", err)
	}
	for _, art := range snapshot.Articles {
		if err := writef(tw, "  %s\t%s\t\n", truncate(art.Title, 40), art.PublishedAt); err != nil {
			return fmt.Errorf("write overview article: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush overview table: %w", err)
	}
	return nil
}
