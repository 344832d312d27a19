package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Alfareiza/4yousee/config"
	"github.com/Alfareiza/4yousee/filter"
	"github.com/Alfareiza/4yousee/fouryousee"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *fouryousee.Client
	filters  *filter.Manager
	dryRun   bool
	appInfo  = buildInfo{Version: "dev", BuildTime: "unknown"}
	stdinBuf = bufio.NewReader(os.Stdin)
)

type buildInfo struct {
	Version   string
	BuildTime string
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "4yousee",
	Short: "A command line client for the 4YouSee digital signage API",
	Long: `4yousee lists, inspects, uploads and deletes the records of a 4YouSee
account: medias, categories, players, playlists, templates, news and reports.

The secret token is read from the config file, FOURYOUSEE_API_TOKEN or TOKEN.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records the build metadata injected at link time
func SetVersion(version, buildTime string) {
	appInfo = buildInfo{Version: version, BuildTime: buildTime}
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "show what would change without calling the API")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// the updater talks to GitHub only
	if cmd == updateCmd {
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, os.Stderr)
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	client, err = newClient(cfg.API, logger)
	if err != nil {
		return fmt.Errorf("failed to create 4YouSee client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter in config: %w", err)
	}

	return nil
}

// newClient builds the API client from the api section of the config
func newClient(api config.APIConfig, logger zerolog.Logger) (*fouryousee.Client, error) {
	opts := []fouryousee.Option{
		fouryousee.WithBaseURL(api.URL),
		fouryousee.WithRequestDelay(api.RequestDelay),
		fouryousee.WithAccount(fouryousee.Account{
			Name:    api.Account.Name,
			Account: api.Account.Account,
			Type:    api.Account.Type,
		}),
	}
	if api.Timeout > 0 {
		opts = append(opts, fouryousee.WithTimeout(api.Timeout))
	}
	if api.RateLimit > 0 {
		opts = append(opts, fouryousee.WithRateLimit(rate.NewLimiter(rate.Limit(api.RateLimit), 1)))
	}

	return fouryousee.NewClient(api.Token, logger, opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// No colors when the output is piped or redirected
	tty := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// confirm asks a yes/no question on stdin; anything but y means no
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := stdinBuf.ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(response), "y")
}
