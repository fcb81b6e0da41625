package terminal

import (
	"io"
	"os"

	"github.com/de-tools/booking-reports/pkg/runtime/terminal/commands"
	"github.com/de-tools/booking-reports/pkg/runtime/terminal/export"
	"github.com/de-tools/booking-reports/pkg/services/config"
	"github.com/de-tools/booking-reports/pkg/store/jsonfile"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command

	dataDir string
	cfgPath string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Booking analytics and reporting tool",
	}

	cmd.PersistentFlags().StringVar(&cli.dataDir, "data-dir", "data",
		"Directory holding orders.json and rooms.json")
	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "",
		"Path to an optional reporting config file")

	cmd.AddCommand(commands.NewAnalyticsCmd(cli.store, cli.reporter))
	cmd.AddCommand(commands.NewOccupancyCmd(cli.store, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.store))
	cmd.AddCommand(commands.NewValidateCmd(cli.store))

	return cmd
}

// store resolves the data directory, letting a config file override the
// flag default, and opens the document store over it.
func (cli *CLI) store() (*jsonfile.Store, error) {
	dir := cli.dataDir
	if cli.cfgPath != "" {
		cfg, err := config.LoadReporting(cli.cfgPath)
		if err != nil {
			return nil, err
		}
		if cfg.DataDir != "" {
			dir = cfg.DataDir
		}
	}
	return jsonfile.NewStore(jsonfile.Settings{DataDir: dir}), nil
}
