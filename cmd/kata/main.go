package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"kata/commands"
	"kata/config"
	"kata/misc"
	"kata/selector"
	"kata/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		// everything goes to console, file logging is left as configured
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// remove empty panic file if any
	if env.Cfg != nil && env.Cfg.Logging.FileLogger.Level != "none" {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := config.PanicLogName(env.Cfg.Logging.FileLogger.Destination)
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Ignore urfave/cli default error handling - cli.Exit() is not used, regular
// errors are returned from subcommands.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Logger().Warn("Unknown command, nothing to do", zap.String("command", name))
}

func main() {

	// allow graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "rectangles, their serialized form and CSS selectors",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, debug output to console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "area",
				Usage:        "Prints area of a rectangle",
				OnUsageError: usageErrorHandler,
				Action:       commands.Area,
				ArgsUsage:    "WIDTH HEIGHT",
			},
			{
				Name:         "encode",
				Usage:        "Prints serialized (JSON) form of a rectangle",
				OnUsageError: usageErrorHandler,
				Action:       commands.Encode,
				ArgsUsage:    "WIDTH HEIGHT",
			},
			{
				Name:         "decode",
				Usage:        "Rebuilds value from its serialized (JSON) form",
				OnUsageError: usageErrorHandler,
				Action:       commands.Decode,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "shape", Aliases: []string{"s"}, Usage: "`NAME` of the shape to build, default is taken from configuration"},
				},
				ArgsUsage: "[SOURCE]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    file with JSON object to read, if absent or "-" - STDIN

	Values of the object fields are passed to the shape constructor in the
	order they appear in the text, field names are not used.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "selector",
				Usage:        "Builds CSS selector",
				OnUsageError: usageErrorHandler,
				Action:       commands.Selector,
				ArgsUsage:    "TOKEN...",
				CustomHelpTemplate: fmt.Sprintf(`%s
TOKEN:
    either selector fragment "kind:value" where kind is one of
        %s
    or combinator joining compound selectors around it, one of
        %s

	Fragments of a compound selector must follow the order above, element,
	id and pseudo-element may appear only once.
`, cli.CommandHelpTemplate, strings.Join(selector.KindNames(), ", "), strings.Join(selector.CombinatorNames(), ", ")),
			},
			{
				Name:         "rule",
				Usage:        "Prints CSS rule for selector",
				OnUsageError: usageErrorHandler,
				Action:       commands.Rule,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "property", Aliases: []string{"p"}, Usage: "property `NAME=VALUE`, may be repeated"},
					&cli.StringFlag{Name: "declarations", Usage: "declaration list `TEXT` (\"color: red; margin: 0\")"},
				},
				ArgsUsage: "TOKEN...",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := env.Output()
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
