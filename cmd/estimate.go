package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"freight-booking/internal/booking"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [SERVICE_TYPE]",
	Short: "Print the flat price estimate for one or all service types",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		types := booking.ServiceTypes
		if len(args) == 1 {
			st, err := booking.ParseServiceType(args[0])
			if err != nil {
				return err
			}
			types = []booking.ServiceType{st}
		}
		return printEstimates(cmd.OutOrStdout(), types)
	},
}

func printEstimates(out io.Writer, types []booking.ServiceType) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE TYPE\tBASE\tSURCHARGE\tESTIMATE")

	for _, st := range types {
		surcharge, err := booking.Surcharge(st)
		if err != nil {
			return err
		}
		price, err := booking.EstimatePrice(st)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", st,
			booking.BaseFee.StringFixed(2), surcharge.StringFixed(2), price.StringFixed(2))
	}

	return tw.Flush()
}
