// Package commands implements the nodefinder command line.
package commands

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configDir string
	logLevel  string
}

// NewRootCommand builds the nodefinder command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "nodefinder",
		Short: "Discover and validate public blockchain JSON-RPC nodes",
		Long: `nodefinder searches Shodan for hosts advertising a chain's JSON-RPC banner,
checks each candidate's chain id, genesis block and sync height against a trusted
reference node, and returns the fastest healthy nodes.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "configs", "directory containing config.yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		newServeCommand(opts),
		newFindCommand(opts),
		newChainsCommand(opts),
	)
	return cmd
}
