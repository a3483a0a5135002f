// Command difakses is an operator console for the Difakses API gateway:
// it signs in, inspects the session, and browses the public catalogues
// from a terminal.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/difakses/difakses-go/client"
	"github.com/difakses/difakses-go/config"
	"github.com/difakses/difakses-go/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	Client *client.Client
}

func main() {
	if len(os.Args) < 2 {
		logger := bootstrap.InitLogger(false)
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		logger := bootstrap.InitLogger(false)
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		bootstrap.InitLogger(false).ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	c, err := bootstrap.NewClient(cfg, logger)
	if err != nil {
		logger.ErrorContext(context.Background(), "build client", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal client construction failure to callers
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
		Client: c,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"health": {
			name:        "health",
			description: "Probe the AI services behind the gateway",
			run:         runHealth,
		},
		"login": {
			name:        "login",
			description: "Sign in and persist the session token",
			run:         runLogin,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the user behind the stored session",
			run:         runWhoami,
		},
		"logout": {
			name:        "logout",
			description: "Clear the stored session and notify the backend",
			run:         runLogout,
		},
		"events": {
			name:        "events",
			description: "List public events",
			run:         runEvents,
		},
		"locations": {
			name:        "locations",
			description: "List therapy locations",
			run:         runLocations,
		},
		"resources": {
			name:        "resources",
			description: "List public resources",
			run:         runResources,
		},
		"notifications": {
			name:        "notifications",
			description: "List notifications for the signed-in user",
			run:         runNotifications,
		},
		"dictionary": {
			name:        "dictionary",
			description: "Browse the sign-language dictionary",
			run:         runDictionary,
		},
		"tts": {
			name:        "tts",
			description: "Synthesize speech for a text and write the audio to a file",
			run:         runTTS,
		},
		"overview": {
			name:        "overview",
			description: "Fetch a combined platform snapshot (events, communities, locations, articles)",
			run:         runOverview,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: difakses <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}
