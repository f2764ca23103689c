package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jthurston/EmbCalc/internal/domain"
)

// price: admit the form, snapshot the rates, print the breakdown.
func priceCmd() *cobra.Command {
	var (
		form   domain.OrderForm
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price an order from stitch count, items and extras",
		RunE: func(cmd *cobra.Command, args []string) error {
			breakdown, err := wire.Quotes.Quote(form)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(breakdown)
			}
			fmt.Print(formatBreakdown(breakdown, wire.Config.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Stitches, "stitches", "", "stitch count per item")
	cmd.Flags().StringVar(&form.Items, "items", "", "number of items (default 1)")
	cmd.Flags().StringVar(&form.Appliques, "appliques", "", "appliques per item")
	cmd.Flags().StringVar(&form.BlankCost, "blank-cost", "", "blank garment cost per item")
	cmd.Flags().StringVar(&form.DesignCost, "design-cost", "", "design fee per item")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the unrounded breakdown as JSON")
	_ = cmd.MarkFlagRequired("stitches")
	return cmd
}
