package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pageprice/internal/pricing"
)

func newTiersCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "List the tiers in the catalog with monthly and yearly prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTiers(cmd, rootFlags)
		},
	}

	return cmd
}

func runTiers(cmd *cobra.Command, rootFlags *rootFlags) error {
	p, log, closeLog, err := setup(rootFlags, cmd.ErrOrStderr(), "tiers", "list tiers")
	if err != nil {
		return err
	}
	defer closeLog()

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TIER\tPAGEVIEWS\tMONTHLY\tYEARLY")

	for _, tier := range p.Table.Tiers() {
		marker := ""
		if tier.ID == p.InitialTier {
			marker = " *"
		}
		monthly := pricing.FormatPrice(pricing.DisplayedPrice(tier.BasePrice, false, p.Multiplier))
		yearly := pricing.FormatPrice(pricing.DisplayedPrice(tier.BasePrice, true, p.Multiplier))
		fmt.Fprintf(writer, "%d%s\t%s\t%s\t%s\n", tier.ID, marker, tier.Label, monthly, yearly)
	}

	if err := writer.Flush(); err != nil {
		return newCommandError("list tiers", "writing output", err, "Check that stdout is writable.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n* selected at startup; yearly prices include a %s%% discount\n", pricing.DiscountPercent(p.Multiplier))
	log.Debug("tiers listed", "count", p.Table.Len())
	return nil
}
