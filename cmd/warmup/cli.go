package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/comalice/warmup"
	"github.com/comalice/warmup/internal/batch"
	"github.com/comalice/warmup/internal/config"
	"github.com/comalice/warmup/internal/logging"
	"github.com/comalice/warmup/internal/render"
)

const serviceName = "warmup"

var shortHelp = map[string]string{
	"sum":       "Add two integers",
	"century":   "Century containing a year",
	"color":     "Convert a hex color to (R, G, B)",
	"fibonacci": "n-th element of 1, 2, 3, 5, 8, ...",
	"transpose": "Transpose a rectangular matrix",
	"base":      "Write an integer in radix 2 to 36",
	"phone":     "Check the 8-800-xxx-xx-xx phone format",
	"smiles":    "Count :-) and (-: in a text",
	"tictactoe": "Winner of a finished 3x3 game",
}

// app carries what the persistent pre-run resolves for the subcommands.
type app struct {
	cfg       config.Config
	log       *logrus.Entry
	formatter *render.Formatter
	raw       bool
}

func newRootCommand() *cobra.Command {
	a := &app{}
	var (
		logLevel  string
		logFormat string
		output    string
		locale    string
	)

	rootCommand := &cobra.Command{
		Use:   "warmup",
		Short: "Run the warmup functions from the command line",
		Long: `Run the warmup functions from the command line.

Arguments are decoded as YAML values, so 12 is an integer, 1.5 a float,
x a string and [[1,2],[3,4]] a matrix. Pass --raw to keep every argument
as a string. Put negative numbers after "--".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, loadConfigError := config.Load()
			if loadConfigError != nil {
				return fmt.Errorf("config error: %w", loadConfigError)
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("locale") {
				cfg.Locale = locale
			}
			if validateError := cfg.Validate(); validateError != nil {
				return fmt.Errorf("config error: %w", validateError)
			}

			formatter, formatterError := render.NewFormatter(cfg.Locale)
			if formatterError != nil {
				return fmt.Errorf("config error: %w", formatterError)
			}
			a.cfg = cfg
			a.formatter = formatter
			a.log = logging.New(serviceName, cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
	}
	rootCommand.SilenceUsage = true
	rootCommand.SilenceErrors = true

	persistent := rootCommand.PersistentFlags()
	persistent.StringVar(&logLevel, "log-level", "info", "log level (env WARMUP_LOG_LEVEL)")
	persistent.StringVar(&logFormat, "log-format", config.LogText, "log format: text or json (env WARMUP_LOG_FORMAT)")
	persistent.StringVar(&output, "output", config.OutputYAML, "report format for run: yaml or json (env WARMUP_OUTPUT)")
	persistent.StringVar(&locale, "locale", "", "group integer digits for this locale, e.g. en (env WARMUP_LOCALE)")
	persistent.BoolVar(&a.raw, "raw", false, "pass arguments as strings without YAML decoding")

	for _, name := range warmup.Names() {
		params, _ := warmup.Params(name)
		rootCommand.AddCommand(newFuncCommand(a, name, params))
	}
	rootCommand.AddCommand(newRunCommand(a))
	rootCommand.AddCommand(newListCommand())
	return rootCommand
}

func newFuncCommand(a *app, name string, params []string) *cobra.Command {
	usage := make([]string, len(params))
	for i, p := range params {
		usage[i] = "<" + p + ">"
	}
	return &cobra.Command{
		Use:   name + " " + strings.Join(usage, " "),
		Short: shortHelp[name],
		Args:  cobra.ExactArgs(len(params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			decode := decodeArg
			if warmup.TakesText(name) {
				decode = decodeTextArg
			}
			values := make([]any, len(args))
			for i, arg := range args {
				values[i] = decode(arg, a.raw)
			}

			result, callError := warmup.Call(name, values...)
			callLog := a.log.WithField("func", name)
			if callError != nil {
				callLog.WithField("kind", warmup.KindOf(callError)).Debug("call rejected")
				return callError
			}
			callLog.WithField("result", result).Debug("call evaluated")

			if _, writeError := fmt.Fprintln(cmd.OutOrStdout(), a.formatter.Format(result)); writeError != nil {
				return fmt.Errorf("write result: %w", writeError)
			}
			return nil
		},
	}
}

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file|->",
		Short: "Evaluate a YAML or JSON case file and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				file      batch.File
				loadError error
			)
			if args[0] == "-" {
				file, loadError = batch.Decode(cmd.InOrStdin())
			} else {
				file, loadError = batch.Load(args[0])
			}
			if loadError != nil {
				return fmt.Errorf("load cases: %w", loadError)
			}

			format, formatError := batch.ParseFormat(a.cfg.Output)
			if formatError != nil {
				return formatError
			}

			report, runError := batch.NewRunner(warmup.Call, a.log).Run(cmd.Context(), file)
			if encodeError := batch.Encode(cmd.OutOrStdout(), format, report); encodeError != nil {
				return fmt.Errorf("write report: %w", encodeError)
			}
			if runError != nil {
				return runError
			}
			if report.Summary.Failed > 0 {
				return fmt.Errorf("%d of %d cases failed", report.Summary.Failed, report.Summary.Total)
			}
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the functions and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range warmup.Names() {
				params, _ := warmup.Params(name)
				if _, writeError := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, strings.Join(params, " ")); writeError != nil {
					return fmt.Errorf("write list: %w", writeError)
				}
			}
			return nil
		},
	}
}
