package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/panicit/internal/application"
	"github.com/eugenenazirov/panicit/internal/config"
	"github.com/eugenenazirov/panicit/internal/host"
	"github.com/eugenenazirov/panicit/internal/logging"
	"github.com/eugenenazirov/panicit/internal/storage"
	"github.com/eugenenazirov/panicit/internal/terminator"
)

var newHost = func() host.Host { return host.Process{} }

type cli struct {
	app *kingpin.Application

	configFile       *string
	logFormat        *string
	defaultExit      *bool
	defaultExitSet   bool
	defaultSilent    *bool
	defaultSilentSet bool
	defaultExitCode  *string
	defaultCodeSet   bool

	raise       *kingpin.CmdClause
	message     *string
	cause       *string
	causeSet    bool
	exitCode    *int
	exitCodeSet bool
	silent      *bool
	silentSet   bool
	exit        *bool
	exitSet     bool

	defaults *kingpin.CmdClause
}

func newCLI() *cli {
	c := &cli{}
	c.app = kingpin.New("panicit", "Report a fatal condition and stop: logs the message, exits with a status code")

	c.configFile = c.app.Flag("config", "Path to YAML configuration file").String()
	c.logFormat = c.app.Flag("log-format", "Log encoding: console or json").String()
	c.defaultExit = c.app.Flag("default-exit", "Exit the process unless a call says otherwise").IsSetByUser(&c.defaultExitSet).Bool()
	c.defaultSilent = c.app.Flag("default-silent", "Suppress logging unless a call says otherwise").IsSetByUser(&c.defaultSilentSet).Bool()
	c.defaultExitCode = c.app.Flag("default-exit-code", "Exit status used when a call sets none").IsSetByUser(&c.defaultCodeSet).String()

	c.raise = c.app.Command("raise", "Log a fatal message and terminate")
	c.message = c.raise.Arg("message", "Message describing the failure").Required().String()
	c.cause = c.raise.Flag("cause", "Underlying cause, logged under the message").IsSetByUser(&c.causeSet).String()
	c.exitCode = c.raise.Flag("exit-code", "Exit status for this call").IsSetByUser(&c.exitCodeSet).Int()
	c.silent = c.raise.Flag("silent", "Do not log").IsSetByUser(&c.silentSet).Bool()
	c.exit = c.raise.Flag("exit", "Terminate the process").IsSetByUser(&c.exitSet).Bool()

	c.defaults = c.app.Command("defaults", "Print the resolved defaults as YAML")

	return c
}

func (c *cli) overrides() *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile: *c.configFile,
	}

	if *c.logFormat != "" {
		overrides.LogFormat = c.logFormat
	}

	if c.defaultExitSet {
		overrides.Exit = c.defaultExit
	}

	if c.defaultSilentSet {
		overrides.Silent = c.defaultSilent
	}

	if c.defaultCodeSet {
		overrides.ExitCode = c.defaultExitCode
	}

	return overrides
}

func (c *cli) callOptions() []terminator.Option {
	var opts []terminator.Option
	if c.causeSet {
		opts = append(opts, terminator.WithCause(*c.cause))
	}
	if c.exitCodeSet {
		opts = append(opts, terminator.WithExitCode(*c.exitCode))
	}
	if c.silentSet {
		opts = append(opts, terminator.WithSilent(*c.silent))
	}
	if c.exitSet {
		opts = append(opts, terminator.WithExit(*c.exit))
	}
	return opts
}

func main() {
	kingpin.FatalIfError(run(os.Args[1:], os.Stdout), "")
}

func run(args []string, stdout io.Writer) error {
	c := newCLI()
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.overrides())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.ForFormat(cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.NewWithHost(cfg, logger, newHost())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	switch command {
	case c.defaults.FullCommand():
		return writeDefaults(stdout, app.Defaults())
	case c.raise.FullCommand():
		app.Terminator().Panic(*c.message, c.callOptions()...)
	}
	return nil
}

func writeDefaults(w io.Writer, d storage.Defaults) error {
	out, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode defaults: %w", err)
	}
	_, err = w.Write(out)
	return err
}
