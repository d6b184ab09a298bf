// Command tabnewsctl is a command line client for the TabNews API.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	tabnews "github.com/tabnews/tabnews-go"
	"github.com/tabnews/tabnews-go/internal/config"
	"github.com/tabnews/tabnews-go/internal/logger"
)

// app carries resolved settings shared by every subcommand.
type app struct {
	apiFlag     string
	timeoutFlag time.Duration
	outputFlag  string
	debugFlag   bool

	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the CLI with args and reports a failing command on errOut.
func execute(args []string, out, errOut io.Writer) error {
	rootCmd, a := newRootCmd(out, errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		a.reportError(err)
	}
	return err
}

// reportError logs err with its stack once the logger is configured. Errors
// raised before that, such as bad flags or config, are printed plainly.
func (a *app) reportError(err error) {
	if a.cfg == nil {
		fmt.Fprintln(a.errOut, err)
		return
	}
	a.log.Error().Stack().Err(err).Msg("command failed")
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{out: out, errOut: errOut, log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "tabnewsctl",
		Short:         "CLI client for the TabNews REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.apiFlag, "api", "a", tabnews.DefaultBaseURL, "TabNews API base URL")
	pf.DurationVar(&a.timeoutFlag, "timeout", 30*time.Second, "Per-request timeout")
	pf.StringVarP(&a.outputFlag, "output", "o", "json", "Output format: json or yaml")
	pf.BoolVar(&a.debugFlag, "debug", false, "Log HTTP exchanges to stderr")

	rootCmd.AddCommand(
		newPostsCmd(a),
		newAnalyticsCmd(a),
		newUsersCmd(a),
		newLoginCmd(a),
		newRecoveryCmd(a),
	)
	return rootCmd, a
}

// setup merges environment configuration with explicitly set flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.BaseURL = a.apiFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeoutFlag
	}
	if flags.Changed("output") {
		cfg.Output = a.outputFlag
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debugFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Level()
	if cfg.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	if f, ok := a.errOut.(*os.File); ok && config.IsTerminal(f) {
		logger.EnableStacks()
		a.log = config.ConsoleLogger(a.errOut, level)
	} else {
		a.log = logger.New(a.errOut, "tabnewsctl", level)
	}
	a.cfg = cfg
	return nil
}

func (a *app) client() (*tabnews.Client, error) {
	return tabnews.New(
		tabnews.WithBaseURL(a.cfg.BaseURL),
		tabnews.WithHTTPTimeout(a.cfg.Timeout),
		tabnews.WithUserAgent(a.cfg.UserAgent),
		tabnews.WithLogger(a.log),
		tabnews.WithDebugLogging(a.cfg.Debug),
	)
}
