package commands

import (
	"github.com/spf13/cobra"

	"github.com/jthurston/EmbCalc/internal/app"
)

var (
	home    string
	verbose bool
	wire    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "embcalc",
		Short:        "Price custom embroidery orders",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Verbose = true
			}
			wire, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "app dir (default ~/.embcalc)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(priceCmd(), settingsCmd())
	return root.Execute()
}
