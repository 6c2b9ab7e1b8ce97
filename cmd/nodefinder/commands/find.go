package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"node-finder/internal/application/port"
	"node-finder/internal/domain/entity"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type findOptions struct {
	chainID   uint64
	kind      string
	country   string
	user      int64
	count     int
	transport string
	tolerance int64
	reference string
	asJSON    bool
}

func newFindCommand(opts *globalOptions) *cobra.Command {
	fo := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Run one discovery and print the ranked nodes",
		Example: `  # Ten fastest full BSC nodes over HTTP
  nodefinder find --chain 56

  # Archive Ethereum nodes in Germany over WebSocket
  nodefinder find --chain 1 --kind archive --country DE --transport ws

  # Up to 50 healthy Base nodes as a JSON array
  nodefinder find --chain 8453 --kind bulk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := fo.request()
			if err != nil {
				return err
			}

			a, err := buildApp(opts, "warn")
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			result, err := a.finder.Find(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printFindResult(cmd.OutOrStdout(), result, fo.asJSON)
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&fo.chainID, "chain", 0, "chain id (required)")
	f.StringVar(&fo.kind, "kind", "full", "node kind: full, archive or bulk")
	f.StringVar(&fo.country, "country", "", "two-letter country code")
	f.Int64Var(&fo.user, "user", 0, "user whose settings apply")
	f.IntVar(&fo.count, "count", 0, "number of nodes (default from settings)")
	f.StringVar(&fo.transport, "transport", "", "http or ws (default from settings)")
	f.Int64Var(&fo.tolerance, "tolerance", -1, "sync tolerance in blocks (default from settings)")
	f.StringVar(&fo.reference, "reference", "", "reference RPC URL override")
	f.BoolVar(&fo.asJSON, "json", false, "print JSON")
	_ = cmd.MarkFlagRequired("chain")

	return cmd
}

func (fo *findOptions) request() (port.FindRequest, error) {
	kind, err := entity.ParseNodeKind(fo.kind)
	if err != nil {
		return port.FindRequest{}, err
	}
	req := port.FindRequest{
		ChainID:      fo.chainID,
		Kind:         kind,
		CountryCode:  fo.country,
		UserID:       fo.user,
		Count:        fo.count,
		ReferenceURL: fo.reference,
	}
	if fo.transport != "" {
		if req.Transport, err = entity.ParseTransport(fo.transport); err != nil {
			return port.FindRequest{}, err
		}
	}
	if fo.tolerance >= 0 {
		tolerance := uint64(fo.tolerance)
		req.SyncTolerance = &tolerance
	}
	return req, nil
}

func printFindResult(w io.Writer, result port.FindResult, asJSON bool) error {
	if result.Kind == entity.NodeKindBulk || asJSON {
		var v any = result
		if result.Kind == entity.NodeKindBulk {
			v = result.URLs()
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	if result.Expanded {
		fmt.Fprintf(w, "No nodes in %s, showing results from anywhere.\n", result.CountryCode)
	}
	if len(result.Nodes) == 0 {
		_, err := fmt.Fprintf(w, "No healthy %s nodes found for %s.\n", result.Kind, result.Chain.Name)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tURL\tLATENCY\tBLOCK\tARCHIVE")
	for i, n := range result.Nodes {
		fmt.Fprintf(tw, "%d\t%s\t%dms\t%d\t%t\n", i+1, n.URL, n.LatencyMs, n.BlockNumber, n.Archive)
	}
	return tw.Flush()
}
