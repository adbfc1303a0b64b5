package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thatguydan86/rentradar/pkg/areas"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Print the configured area registry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfgs, err := areas.Load(viper.GetViper())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "AREA\tLOCATION\tADR\tBILLS\tBEDS\tBATHS\tMAX RENT\tTARGET\tFEE\t")
		for _, c := range cfgs {
			fmt.Fprintf(w, "%s\t%s\t£%d\t£%d\t%d-%d\t%d+\t£%d\t£%d\t%.0f%%\t\n",
				c.Name, c.Location, c.NightlyRate, c.Bills(),
				c.MinBedrooms, c.MaxBedrooms, c.MinBathrooms,
				c.MaxPrice, c.Target, c.BookingFee*100)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(areasCmd)
}
