package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"go.opentelemetry.io/otel"

	"github.com/bft-labs/slackweb"
	"github.com/bft-labs/slackweb/internal/cliconfig"
	"github.com/bft-labs/slackweb/pkg/api"
	"github.com/bft-labs/slackweb/pkg/log"
)

const tracerName = "github.com/bft-labs/slackweb/cmd/slackweb"

const longHelp = `
Call Slack web API methods from the command line.

The API token is read from --token, the SLACK_API_TOKEN environment variable
(a .env file in the working directory is honored), or the token key of the
config file, in that order. Tokens are sent as a bearer Authorization header
and never appear in request URLs.
`

var exampleUsage = strings.TrimSpace(`
  SLACK_API_TOKEN=xoxb-... slackweb history C09123456
  slackweb channels --limit 50
  slackweb post C09123456 "deploy finished"
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration into subcommands.
type app struct {
	out     io.Writer
	cfg     cliconfig.Config
	client  *api.Client
	logger  log.Logger
	cfgPath string
	envFile string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "slackweb",
		Short:         "Call Slack web API methods",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.slackweb/config.toml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringVar(&a.cfg.Token, "token", "", "Slack API token (prefer SLACK_API_TOKEN)")
	flags.StringVar(&a.cfg.BaseURL, "base-url", a.cfg.BaseURL, "Slack API base URL")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "HTTP timeout per request")
	flags.StringVar(&a.cfg.UserAgent, "user-agent", "", "User-Agent header")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	_ = flags.MarkHidden("base-url")

	root.AddCommand(
		newHistoryCmd(a),
		newChannelsCmd(a),
		newPostCmd(a),
	)

	return root
}

// setup resolves configuration (flags > env > file > defaults) and builds
// the API client.
func (a *app) setup(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.LoadDotEnv(a.envFile); err != nil {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = log.NewZerologAdapterWithWriter(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration", log.Any("config", a.cfg.Masked()))

	// Spans go to the global provider, a no-op unless the embedding
	// process installs one.
	sender := slackweb.New(
		slackweb.WithLogger(a.logger),
		slackweb.WithTimeout(a.cfg.Timeout),
		slackweb.WithUserAgent(a.cfg.UserAgent),
		slackweb.WithTracer(otel.Tracer(tracerName)),
	)
	a.client = slackweb.NewClient(sender, api.WithBaseURL(a.cfg.BaseURL), api.WithLogger(a.logger))

	return nil
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// the HTTP client enforces the per-request timeout; this bounds the command.
	return context.WithTimeout(ctx, 2*a.cfg.Timeout+time.Second)
}
