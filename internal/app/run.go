package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gi8lino/jirareport/internal/config"
	"github.com/gi8lino/jirareport/internal/flag"
	"github.com/gi8lino/jirareport/internal/jira"
	"github.com/gi8lino/jirareport/internal/logging"
	"github.com/gi8lino/jirareport/internal/output"
	"github.com/gi8lino/jirareport/internal/redact"

	"github.com/containeroo/tinyflags"
)

// Run executes the report once and writes it to stdout. Logs go to stderr.
func Run(ctx context.Context, version, commit string, args []string, stdout, stderr io.Writer, getEnv func(string) string) error {
	// Create a new context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Parse command-line flags
	flags, err := flag.ParseArgs(version, args, stdout, getEnv)
	if err != nil {
		if tinyflags.IsHelpRequested(err) || tinyflags.IsVersionRequested(err) {
			fmt.Fprint(stdout, err.Error()) // nolint:errcheck
			return nil
		}
		return fmt.Errorf("parsing error: %w", err)
	}

	// Setup logger
	logger := logging.SetupLogger(flags.LogFormat, flags.Debug, stderr)
	logger.Debug("Starting jirareport", "version", version, "commit", commit)

	// Load and validate config
	cfg, err := config.LoadConfig(flags.Config)
	if err != nil {
		return fmt.Errorf("loading config error: %w", err)
	}
	if err := config.ValidateConfig(&cfg, flags.Output == output.FormatTemplate); err != nil {
		return fmt.Errorf("validating config error: %w", err)
	}

	// Setup jira client
	creds, err := config.ResolveCredentials(config.Credentials{
		Username:    flags.Username,
		APIToken:    flags.APIToken,
		BearerToken: flags.BearerToken,
		Domain:      flags.Domain,
	})
	if err != nil {
		return fmt.Errorf("credentials error: %w", err)
	}
	auth, method, err := jira.ResolveAuth(creds.BearerToken, creds.Username, creds.APIToken)
	if err != nil {
		return fmt.Errorf("auth error: %w", err)
	}
	apiURL, err := jira.BaseURL(creds.Domain)
	if err != nil {
		return fmt.Errorf("domain error: %w", err)
	}
	c := jira.NewClient(apiURL, auth, cfg.SkipTLSVerify)

	logger.Debug("jira client",
		"url", apiURL.String(),
		"method", method,
		"header", redact.Header(redact.AuthHeader(auth)),
	)

	summaries, err := SummarizeMeaningfulIssues(ctx, c, flags.JQL, cfg, logger)
	if err != nil {
		return err
	}

	return output.Write(stdout, summaries, flags.Output, cfg.Template)
}
