package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pageprice/internal/pricing"
)

type quoteOptions struct {
	tier   int
	yearly bool
}

func newQuoteCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the price for a tier without launching the widget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.tier, "tier", "t", pricing.DefaultTier, "Tier id to quote")
	cmd.Flags().BoolVarP(&opts.yearly, "yearly", "y", false, "Quote with yearly billing")

	return cmd
}

func runQuote(cmd *cobra.Command, rootFlags *rootFlags, opts *quoteOptions) error {
	p, log, closeLog, err := setup(rootFlags, cmd.ErrOrStderr(), "quote", "quote price")
	if err != nil {
		return err
	}
	defer closeLog()

	controller, err := pricing.NewController(p.Table, nil, append(p.Options(), pricing.WithLogger(log))...)
	if err != nil {
		return newCommandError("quote price", "building pricing controller", err, "Check that the catalog's default tier exists.")
	}

	if cmd.Flags().Changed("tier") {
		if err := controller.SetTier(opts.tier); err != nil {
			return newCommandError("quote price", fmt.Sprintf("selecting tier %d", opts.tier), err, fmt.Sprintf("Choose a tier between %d and %d; run 'pageprice tiers' to list them.", p.Table.Min(), p.Table.Max()))
		}
	}
	if opts.yearly {
		controller.ToggleBilling()
	}

	display := controller.CurrentDisplay()
	billing := "monthly"
	if display.DiscountActive {
		billing = "yearly (" + pricing.DiscountPercent(p.Multiplier).String() + "% discount)"
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Pageviews: %s\n", display.ViewCount)
	_, _ = fmt.Fprintf(out, "Price:     %s / month\n", display.Price)
	_, _ = fmt.Fprintf(out, "Billing:   %s\n", billing)

	log.Info("quote rendered", "tier", controller.SelectedTier(), "yearly", controller.IsYearly(), "price", display.Price)
	return nil
}
