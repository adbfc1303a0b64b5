package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thatguydan86/rentradar/pkg/engine"
)

// check: the profitability model as a one-off calculator, for vetting a deal
// by hand before it ever shows up in a search.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the profitability model on one deal's numbers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rent, _ := cmd.Flags().GetInt("rent")
		rate, _ := cmd.Flags().GetInt("rate")
		bills, _ := cmd.Flags().GetInt("bills")
		if rent <= 0 || rate <= 0 {
			return fmt.Errorf("--rent and --rate are required and must be positive")
		}

		fee, _ := cmd.Flags().GetFloat64("fee")
		target, _ := cmd.Flags().GetInt("target")
		if !cmd.Flags().Changed("fee") {
			fee = viper.GetFloat64("profit.booking_fee")
		}
		if !cmd.Flags().Changed("target") {
			target = viper.GetInt("profit.target")
		}
		if fee < 0 || fee >= 1 {
			return fmt.Errorf("--fee must be in [0,1)")
		}
		if target <= 0 {
			return fmt.Errorf("--target must be positive")
		}

		profits := engine.ComputeProfits(rent, rate, bills, fee)
		band := engine.BandFor(profits.At70, target)
		score := engine.Score10(profits.At70, target)

		fmt.Printf("Rent £%d/mo | Nightly £%d | Bills £%d/mo | Fee %.0f%%\n\n", rent, rate, bills, fee*100)
		fmt.Printf("Profit @ 50%%  → £%d\n", profits.At50)
		fmt.Printf("Profit @ 70%%  → £%d   (target £%d, band %s, score %.1f/10)\n", profits.At70, target, band, score)
		fmt.Printf("Profit @ 100%% → £%d\n", profits.At100)

		if cmd.Flags().Changed("occupancy") {
			occ, _ := cmd.Flags().GetFloat64("occupancy")
			if occ <= 0 || occ > 1 {
				return fmt.Errorf("--occupancy must be in (0,1]")
			}
			fmt.Printf("Profit @ %.0f%%  → £%d\n", occ*100, engine.ProfitAt(rent, rate, bills, fee, occ))
		}

		recs := engine.Recommend(profits.At70, target, rent, rate, bills, fee)
		if len(recs) > 0 {
			fmt.Printf("\nTo hit target @ 70%%:\n%s\n", engine.RecommendationText(recs))
		} else if profits.At70 >= target {
			fmt.Println("\nMeets target as-is.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Int("rent", 0, "Monthly rent (GBP pcm)")
	checkCmd.Flags().Int("rate", 0, "Assumed nightly rate (GBP)")
	checkCmd.Flags().Int("bills", 0, "Total monthly bills (GBP)")
	checkCmd.Flags().Float64("fee", 0.15, "Booking fee fraction")
	checkCmd.Flags().Int("target", 1300, "Profit target at 70% occupancy")
	checkCmd.Flags().Float64("occupancy", 0.7, "Extra occupancy point to evaluate (0-1]")
}
