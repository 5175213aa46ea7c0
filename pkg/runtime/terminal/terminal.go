package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/retail-dashboard/pkg/runtime/app"
	"github.com/de-tools/retail-dashboard/pkg/runtime/terminal/commands"
	"github.com/de-tools/retail-dashboard/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	source   commands.SourceFlags
	reporter *export.Reporter
	output   io.Writer
	logOut   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// LogOutput receives the structured log, stderr by default.
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
		output:   opts.Output,
		logOut:   opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "salesdash",
		Short:         "Retail sales dashboard for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	cmd.PersistentFlags().StringVarP(&cli.source.ConfigPath, "config", "c", "",
		"Path to a settings file (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&cli.source.ProfilesPath, "profiles-file", app.DefaultProfilesPath(),
		"Path to the upstream profiles file (default is $HOME/.salesdashcfg)")

	cmd.AddCommand(commands.NewDashboardCmd(&cli.source, cli.reporter, cli.logOut))
	cmd.AddCommand(commands.NewProfilesCmd(&cli.source))

	return cmd
}
