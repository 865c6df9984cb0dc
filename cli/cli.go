package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/optexpr/cli/cmd"
	"github.com/ardnew/optexpr/pkg"
)

// CLI is the top-level command-line interface for optexpr.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Eval  cmd.Eval  `cmd:"" default:"withargs" help:"Evaluate an options record"`
	Parse cmd.Parse `cmd:""                    help:"Parse an options record into its expression tree"`
	Lex   cmd.Lex   `cmd:""                    help:"Print the token stream of an options record"`
	Gen   cmd.Gen   `cmd:""                    help:"Print the program generated from an options record"`
	Repl  cmd.Repl  `cmd:""                    help:"Evaluate options records interactively"`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file"`
}

// Run parses args and executes the selected command.
// The exit function is called by kong after printing help or usage errors.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	if err := mkdirAllRequired(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var cli CLI

	// Logger flags take effect before parsing so that usage errors are
	// reported in the requested format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli, cli.options(ctx, exit)...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	defer cli.Log.start(ctx)()
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// options returns the kong configuration of the command line. Flag defaults
// are read from config.json and then from config, an options record, in the
// configuration directory.
func (c *CLI) options(ctx context.Context, exit func(int)) []kong.Option {
	config := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: config,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}

	return []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{c.Log.group(), c.Pprof.group()}),
		kong.BindSingletonProvider(func() context.Context { return ctx }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			Summary:             true,
			Tree:                true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, config+".json"),
		kong.Configuration(resolve(ctx), config),
		vars.CloneWith(c.Log.vars()).CloneWith(c.Pprof.vars()),
	}
}
