package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jthurston/EmbCalc/internal/domain"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the pricing rates",
	}
	cmd.AddCommand(settingsShowCmd(), settingsSetCmd(), settingsResetCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current pricing rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := wire.Settings.Current()
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v (showing defaults)\n", err)
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			printSettings(s, wire.Config.Currency)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rates as JSON")
	return cmd
}

func settingsSetCmd() *cobra.Command {
	var stitch, applique, insurance string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Validate and save new pricing rates",
		Long: "Validate and save new pricing rates. A value outside its allowed " +
			"range, or one that is not a number, reverts to the built-in default. " +
			"The insurance rate is a fraction of the blank cost (0 to 1); 0 is a " +
			"valid rate and disables insurance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := domain.SettingsPatch{}
			if cmd.Flags().Changed("stitch-rate") {
				patch.StitchRate = &stitch
			}
			if cmd.Flags().Changed("applique-rate") {
				patch.AppliqueRate = &applique
			}
			if cmd.Flags().Changed("insurance-rate") {
				patch.InsuranceRate = &insurance
			}
			if patch.StitchRate == nil && patch.AppliqueRate == nil && patch.InsuranceRate == nil {
				return fmt.Errorf("nothing to set; pass at least one rate flag")
			}

			s, err := wire.Settings.Update(patch)
			if err != nil {
				var serr *domain.StorageError
				if errors.As(err, &serr) {
					// The merged rates are still authoritative in memory.
					fmt.Fprintf(os.Stderr, "warning: settings not saved: %v\n", serr)
					printSettings(s, wire.Config.Currency)
				}
				return err
			}
			printSettings(s, wire.Config.Currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&stitch, "stitch-rate", "",
		fmt.Sprintf("charge per 1000 stitches (%v to %v)", domain.MinStitchRate, domain.MaxStitchRate))
	cmd.Flags().StringVar(&applique, "applique-rate", "",
		fmt.Sprintf("charge per applique (%v to %v)", domain.MinAppliqueRate, domain.MaxAppliqueRate))
	cmd.Flags().StringVar(&insurance, "insurance-rate", "",
		fmt.Sprintf("fraction of blank cost (%v to %v)", domain.MinInsuranceRate, domain.MaxInsuranceRate))
	return cmd
}

func settingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default pricing rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := wire.Settings.Reset()
			if err != nil {
				return err
			}
			printSettings(s, wire.Config.Currency)
			return nil
		},
	}
}

func printSettings(s domain.Settings, currency string) {
	fmt.Printf("Stitch rate:    %s%.2f per 1000 stitches\n", currency, s.StitchRate)
	fmt.Printf("Applique rate:  %s%.2f each\n", currency, s.AppliqueRate)
	fmt.Printf("Insurance rate: %.0f%% of blank cost\n", s.InsuranceRate*100)
}
