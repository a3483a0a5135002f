package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/difakses/difakses-go/model"
)

const commandTimeout = 30 * time.Second

type loginOptions struct {
	Email    string
	Password string
	Query    string
}

func parseLoginFlags(args []string) (loginOptions, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Account email (required)")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression applied to the JSON output")

	if err := fs.Parse(args); err != nil {
		return loginOptions{}, err
	}

	opts.Email = strings.TrimSpace(opts.Email)
	if opts.Email == "" {
		return loginOptions{}, errors.New("--email is required")
	}
	if err := validateQuery(opts.Query); err != nil {
		return loginOptions{}, err
	}
	return opts, nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}

	password := opts.Password
	if password == "" {
		if promptErr := writef(os.Stderr, "Password: "); promptErr != nil {
			return fmt.Errorf("print password prompt: %w", promptErr)
		}
		line, readErr := bufio.NewReader(os.Stdin).ReadString('\n')
		if readErr != nil {
			return fmt.Errorf("read password: %w", readErr)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.Auth.Login(ctx, model.LoginRequest{Email: opts.Email, Password: password})
	if resp.Failed() {
		return fmt.Errorf("login: %s", resp.Err)
	}

	cmdCtx.Logger.Info("signed in", "email", resp.Data.User.Email, "role", resp.Data.User.Role)
	return renderJSON(os.Stdout, resp.Data.User, opts.Query)
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	query, err := parseQueryOnlyFlags("whoami", args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.Auth.Session(ctx)
	if resp.Failed() {
		return fmt.Errorf("session: %s", resp.Err)
	}
	if resp.Data == nil {
		if printErr := writeln(os.Stdout, "not signed in"); printErr != nil {
			return fmt.Errorf("print sign-in state: %w", printErr)
		}
		return nil
	}

	if query != "" {
		return renderJSON(os.Stdout, resp.Data, query)
	}
	return printSession(resp.Data)
}

func printSession(session *model.Session) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\t%s\n", session.User.ID); err != nil {
		return fmt.Errorf("write session id: %w", err)
	}
	if err := writef(w, "Email\t%s\n", session.User.Email); err != nil {
		return fmt.Errorf("write session email: %w", err)
	}
	if err := writef(w, "Role\t%s\n", session.User.Role); err != nil {
		return fmt.Errorf("write session role: %w", err)
	}
	if session.User.FullName != "" {
		if err := writef(w, "Name\t%s\n", session.User.FullName); err != nil {
			return fmt.Errorf("write session name: %w", err)
		}
	}
	if !session.ExpiresAt.IsZero() {
		if err := writef(w, "Expires\t%s\n", session.ExpiresAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("write session expiry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush session table: %w", err)
	}
	return nil
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.Auth.SignOut(ctx)
	if resp.Failed() {
		// Local state is already cleared; the backend call is best effort.
		cmdCtx.Logger.Warn("backend logout failed", "error", resp.Err)
	}
	return writeln(os.Stdout, "signed out")
}

func runHealth(cmdCtx *commandContext, args []string) error {
	query, err := parseQueryOnlyFlags("health", args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, commandTimeout)
	defer cancel()

	resp := cmdCtx.Client.AIHealth(ctx)
	if resp.Failed() {
		return fmt.Errorf("health: %s", resp.Err)
	}
	return renderJSON(os.Stdout, resp.Data, query)
}

func parseQueryOnlyFlags(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var query string
	fs.StringVar(&query, "query", "", "JMESPath expression applied to the JSON output")

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if err := validateQuery(query); err != nil {
		return "", err
	}
	return query, nil
}
