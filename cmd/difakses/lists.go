package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/difakses/difakses-go/model"
)

type eventListFlags struct {
	Limit  int
	Offset int
	Mode   string
	Status string
	Q      string
	JSON   bool
	Query  string
}

func parseEventFlags(args []string) (eventListFlags, error) {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts eventListFlags
	fs.IntVar(&opts.Limit, "limit", 20, "Maximum events to list")
	fs.IntVar(&opts.Offset, "offset", 0, "Offset into the listing")
	fs.StringVar(&opts.Mode, "mode", "", "Filter by mode (online, offline, hybrid)")
	fs.StringVar(&opts.Status, "status", "", "Filter by status")
	fs.StringVar(&opts.Q, "q", "", "Filter by title substring")
	fs.BoolVar(&opts.JSON, "json", false, "Print JSON instead of a table")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression applied to the JSON output (implies --json)")

	if err := fs.Parse(args); err != nil {
		return eventListFlags{}, err
	}
	if opts.Mode != "" {
		if _, ok := model.ParseEventMode(opts.Mode); !ok {
			return eventListFlags{}, fmt.Errorf("unknown event mode %q", opts.Mode)
		}
	}
	if err := validateQuery(opts.Query); err != nil {
		return eventListFlags{}, err
	}
	return opts, nil
}

func runEvents(cmdCtx *commandContext, args []string) error {
	opts, err := parseEventFlags(args)
	if err != nil {
		return err
	}

	listOpts := model.EventListOptions{Limit: opts.Limit, Offset: opts.Offset}
	if opts.Mode != "" {
		mode, _ := model.ParseEventMode(opts.Mode)
		listOpts.Mode = &mode
	}
	if opts.Status != "" {
		status := model.EventStatus(strings.ToLower(strings.TrimSpace(opts.Status)))
		listOpts.Status = &status
	}
	if opts.Q != "" {
		listOpts.Q = &opts.Q
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.Events.List(ctx, listOpts)
	if resp.Failed() {
		return fmt.Errorf("list events: %s", resp.Err)
	}

	if opts.JSON || opts.Query != "" {
		return renderJSON(os.Stdout, resp.Data, opts.Query)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if headerErr := writeln(tw, "ID\tTitle\tMode\tStatus\tStarts"); headerErr != nil {
		return fmt.Errorf("write events header: %w", headerErr)
	}
	for _, ev := range resp.Data {
		if rowErr := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			ev.ID, truncate(ev.Title, 40), ev.Mode, ev.Status, ev.StartsAt); rowErr != nil {
			return fmt.Errorf("write event row: %w", rowErr)
		}
	}
	if flushErr := tw.Flush(); flushErr != nil {
		return fmt.Errorf("flush events table: %w", flushErr)
	}
	return nil
}

type pagedListFlags struct {
	Page    int
	PerPage int
	City    string
	Q       string
	JSON    bool
	Query   string
}

func parsePagedFlags(name string, args []string, perPageName string) (pagedListFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts pagedListFlags
	fs.IntVar(&opts.Page, "page", 1, "Page to fetch")
	fs.IntVar(&opts.PerPage, perPageName, 20, "Entries per page")
	fs.StringVar(&opts.City, "city", "", "Filter by city (locations only)")
	fs.StringVar(&opts.Q, "q", "", "Free-text filter")
	fs.BoolVar(&opts.JSON, "json", false, "Print JSON instead of a table")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression applied to the JSON output (implies --json)")

	if err := fs.Parse(args); err != nil {
		return pagedListFlags{}, err
	}
	if err := validateQuery(opts.Query); err != nil {
		return pagedListFlags{}, err
	}
	return opts, nil
}

func runLocations(cmdCtx *commandContext, args []string) error {
	opts, err := parsePagedFlags("locations", args, "per-page")
	if err != nil {
		return err
	}

	listOpts := model.LocationListOptions{Page: opts.Page, PerPage: opts.PerPage}
	if opts.City != "" {
		listOpts.City = &opts.City
	}
	if opts.Q != "" {
		listOpts.Q = &opts.Q
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.Locations.List(ctx, listOpts)
	if resp.Failed() {
		return fmt.Errorf("list locations: %s", resp.Err)
	}

	if opts.JSON || opts.Query != "" {
		return renderJSON(os.Stdout, resp.Data, opts.Query)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if headerErr := writeln(tw, "ID\tName\tCity\tPhone"); headerErr != nil {
		return fmt.Errorf("write locations header: %w", headerErr)
	}
	for _, loc := range resp.Data {
		if rowErr := writef(tw, "%s\t%s\t%s\t%s\n",
			loc.ID, truncate(loc.Name, 40), loc.City, loc.Phone); rowErr != nil {
			return fmt.Errorf("write location row: %w", rowErr)
		}
	}
	if flushErr := tw.Flush(); flushErr != nil {
		return fmt.Errorf("flush locations table: %w", flushErr)
	}
	return nil
}

func runResources(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("resources", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		page     int
		perPage  int
		category string
		asJSON   bool
		query    string
	)
	fs.IntVar(&page, "page", 1, "Page to fetch")
	fs.IntVar(&perPage, "per-page", 20, "Entries per page")
	fs.StringVar(&category, "category", "", "Filter by category")
	fs.BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	fs.StringVar(&query, "query", "", "JMESPath expression applied to the JSON output (implies --json)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateQuery(query); err != nil {
		return err
	}

	listOpts := model.ResourceListOptions{Page: page, PerPage: perPage}
	if category != "" {
		listOpts.Category = &category
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.Resources.List(ctx, listOpts)
	if resp.Failed() {
		return fmt.Errorf("list resources: %s", resp.Err)
	}

	if asJSON || query != "" {
		return renderJSON(os.Stdout, resp.Data, query)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if headerErr := writeln(tw, "ID\tTitle\tCategory"); headerErr != nil {
		return fmt.Errorf("write resources header: %w", headerErr)
	}
	for _, res := range resp.Data {
		if rowErr := writef(tw, "%s\t%s\t%s\n", res.ID, truncate(res.Title, 50), res.Category); rowErr != nil {
			return fmt.Errorf("write resource row: %w", rowErr)
		}
	}
	if flushErr := tw.Flush(); flushErr != nil {
		return fmt.Errorf("flush resources table: %w", flushErr)
	}
	return nil
}

func runNotifications(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		page     int
		pageSize int
		unread   bool
		asJSON   bool
		query    string
	)
	fs.IntVar(&page, "page", 1, "Page to fetch")
	fs.IntVar(&pageSize, "page-size", 20, "Entries per page")
	fs.BoolVar(&unread, "unread", false, "Only unread notifications")
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

	resp := cmdCtx.Client.Notifications.List(ctx, model.NotificationListOptions{
		Page:       page,
		PageSize:   pageSize,
		UnreadOnly: unread,
	})
	if resp.Failed() {
		return fmt.Errorf("list notifications: %s", resp.Err)
	}

	if asJSON || query != "" {
		return renderJSON(os.Stdout, resp.Data, query)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if headerErr := writeln(tw, "ID\tTitle\tRead\tCreated"); headerErr != nil {
		return fmt.Errorf("write notifications header: %w", headerErr)
	}
	for _, n := range resp.Data {
		if rowErr := writef(tw, "%s\t%s\t%t\t%s\n", n.ID, truncate(n.Title, 50), n.Read, n.CreatedAt); rowErr != nil {
			return fmt.Errorf("write notification row: %w", rowErr)
		}
	}
	if flushErr := tw.Flush(); flushErr != nil {
		return fmt.Errorf("flush notifications table: %w", flushErr)
	}
	return nil
}

func runDictionary(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("dictionary", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		key   string
		query string
	)
	fs.StringVar(&key, "key", "", "Look up a single sign by key")
	fs.StringVar(&query, "query", "", "JMESPath expression applied to the JSON output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateQuery(query); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	if key != "" {
		resp := cmdCtx.Client.Isyarat.DictionaryEntry(ctx, key)
		if resp.Failed() {
			return fmt.Errorf("dictionary entry %q: %s", key, resp.Err)
		}
		return renderJSON(os.Stdout, resp.Data, query)
	}

	resp := cmdCtx.Client.Isyarat.Dictionary(ctx)
	if resp.Failed() {
		return fmt.Errorf("dictionary: %s", resp.Err)
	}
	if query != "" {
		return renderJSON(os.Stdout, resp.Data, query)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if headerErr := writeln(tw, "Key\tMeaning"); headerErr != nil {
		return fmt.Errorf("write dictionary header: %w", headerErr)
	}
	for _, entry := range resp.Data {
		if rowErr := writef(tw, "%s\t%s\n", entry.Key, truncate(entry.Meaning, 60)); rowErr != nil {
			return fmt.Errorf("write dictionary row: %w", rowErr)
		}
	}
	if flushErr := tw.Flush(); flushErr != nil {
		return fmt.Errorf("flush dictionary table: %w", flushErr)
	}
	return nil
}
