package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newChainsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the chains discovery can run against",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts, "warn")
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			chains, err := a.finder.Chains(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSYMBOL\tREFERENCE\tGENESIS CHECK")
			for _, c := range chains {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n", c.ID, c.Name, c.Symbol, c.DefaultRPC, c.VerifiesGenesis())
			}
			return tw.Flush()
		},
	}
}
