// Package cli provides the command-line interface for gnu-json-result.
package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/AndreyAkinshin/gnu-json-result/internal/collector"
	"github.com/AndreyAkinshin/gnu-json-result/internal/config"
	"github.com/AndreyAkinshin/gnu-json-result/internal/errors"
	"github.com/AndreyAkinshin/gnu-json-result/internal/output"
)

// Version is set at build time.
var Version = "dev"

// usageLine is printed to stdout when the argument count is wrong.
const usageLine = "Usage: gnu-json-result <gnu_test_directory>"

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, args, output.New())
}

// Options holds parsed flags.
type Options struct {
	Help       bool
	Version    bool
	Format     string
	ConfigPath string
	Summary    bool
	Quiet      bool
	Verbose    bool
}

// parseFlags splits flags from positional arguments. Flags may appear
// anywhere; everything after -- is positional.
func parseFlags(args []string) (*Options, []string, error) {
	opts := &Options{}
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "-h" || arg == "--help":
			opts.Help = true
		case arg == "--version":
			opts.Version = true
		case arg == "--summary":
			opts.Summary = true
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
		case arg == "--format" || arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, errors.Usagef("%s requires a value", arg)
			}
			setValueFlag(opts, arg, args[i+1])
			i++
		case strings.HasPrefix(arg, "--format=") || strings.HasPrefix(arg, "--config="):
			name, value, _ := strings.Cut(arg, "=")
			setValueFlag(opts, name, value)
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, nil, errors.Usagef("unknown flag %q", arg)
		default:
			positional = append(positional, arg)
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, errors.Usage("--quiet and --verbose are mutually exclusive")
	}
	return opts, positional, nil
}

func setValueFlag(opts *Options, name, value string) {
	switch name {
	case "--format":
		opts.Format = value
	case "--config":
		opts.ConfigPath = value
	}
}

func run(ctx context.Context, args []string, w *output.Writer) int {
	opts, positional, err := parseFlags(args)
	if err != nil {
		w.ErrorPrefix("%v", err)
		w.Println(usageLine)
		return errors.GetExitCode(err)
	}

	switch {
	case opts.Help:
		printUsage(w)
		return errors.ExitSuccess
	case opts.Version:
		w.Println("gnu-json-result %s", Version)
		return errors.ExitSuccess
	}

	if len(positional) != 1 {
		err := errors.Usage(usageLine)
		w.Println("%v", err)
		return errors.GetExitCode(err)
	}
	root := positional[0]

	w.SetQuiet(opts.Quiet)
	w.SetVerbose(opts.Verbose)

	cfg, err := loadConfig(opts)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if err := collector.CheckRoot(root); err != nil {
		w.Println("%v", err)
		return errors.GetExitCode(err)
	}

	return convert(ctx, root, cfg, opts, w)
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		if _, err := os.Stat(opts.ConfigPath); err != nil {
			return nil, errors.Config("config file not found:", opts.ConfigPath, err)
		}
		loaded, err := config.LoadAndValidate(opts.ConfigPath)
		if err != nil {
			return nil, errors.Config("invalid config", opts.ConfigPath, err)
		}
		cfg = loaded
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if err := config.Validate(cfg); err != nil {
		return nil, errors.Validation("invalid options", err)
	}
	return cfg, nil
}

func convert(ctx context.Context, root string, cfg *config.Config, opts *Options, w *output.Writer) int {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	c := collector.New(root, collector.Options{
		Extension:    cfg.Extension,
		AggregateLog: cfg.AggregateLog,
		TailBytes:    cfg.TailBytes,
	}, w)

	tree, err := c.Collect(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			w.ErrorPrefix("interrupted")
		} else {
			w.ErrorPrefix("%v", err)
		}
		return errors.GetExitCode(err)
	}

	stats := c.Stats()
	w.Debug("scanned %d autotest and %d automake logs, %d recorded, %d failed",
		stats.Autotest, stats.Automake, stats.Recorded, stats.Failed)

	if err := output.Encode(w.Out(), format, tree); err != nil {
		w.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}

	if opts.Summary {
		counts := tree.Counts()
		w.Summary(&counts)
	}
	return errors.ExitSuccess
}
