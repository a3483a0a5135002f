package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/difakses/difakses-go/client"
	"github.com/difakses/difakses-go/model"
)

type ttsOptions struct {
	Text     string
	Language string
	Voice    string
	Out      string
	Service  string
}

func parseTTSFlags(args []string) (ttsOptions, error) {
	fs := flag.NewFlagSet("tts", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts ttsOptions
	fs.StringVar(&opts.Text, "text", "", "Text to synthesize (required)")
	fs.StringVar(&opts.Language, "lang", "", "Language hint, e.g. id-ID")
	fs.StringVar(&opts.Voice, "voice", "", "Voice name")
	fs.StringVar(&opts.Out, "out", "speech.mp3", "Output file for the audio bytes")
	fs.StringVar(&opts.Service, "service", "isyarat", "Backing service: isyarat or vision")

	if err := fs.Parse(args); err != nil {
		return ttsOptions{}, err
	}

	opts.Text = strings.TrimSpace(opts.Text)
	if opts.Text == "" {
		return ttsOptions{}, errors.New("--text is required")
	}
	opts.Service = strings.ToLower(strings.TrimSpace(opts.Service))
	if opts.Service != "isyarat" && opts.Service != "vision" {
		return ttsOptions{}, fmt.Errorf("unknown service %q (want isyarat or vision)", opts.Service)
	}
	return opts, nil
}

func runTTS(cmdCtx *commandContext, args []string) error {
	opts, err := parseTTSFlags(args)
	if err != nil {
		return err
	}

	// Synthesis runs on the inference deadline, not the CLI default.
	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 2*time.Minute)
	defer cancel()

	req := model.TTSRequest{Text: opts.Text, Language: opts.Language, Voice: opts.Voice}

	var resp client.Response[client.Blob]
	if opts.Service == "vision" {
		resp = cmdCtx.Client.Vision.TTS(ctx, req)
	} else {
		resp = cmdCtx.Client.Isyarat.TTS(ctx, req)
	}
	if resp.Failed() {
		return fmt.Errorf("synthesize: %s", resp.Err)
	}
	if len(resp.Data.Data) == 0 {
		return errors.New("synthesize: empty audio payload")
	}

	if writeErr := os.WriteFile(opts.Out, resp.Data.Data, 0o600); writeErr != nil {
		return fmt.Errorf("write audio file: %w", writeErr)
	}

	cmdCtx.Logger.Info("audio written",
		"file", opts.Out,
		"bytes", len(resp.Data.Data),
		"content_type", resp.Data.ContentType,
	)
	return nil
}
