package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatguydan86/rentradar/pkg/storage"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints per-area statistics over the archived leads.",
	Long:  "Prints per-area statistics over the archived leads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		if dbPath == "" {
			dbPath = "rentradar.sqlite"
		}
		if _, err := os.Stat(dbPath); err != nil {
			return fmt.Errorf("database not found: %s", dbPath)
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetAreaStats(cmd.Context())
		if err != nil {
			return err
		}

		if len(stats) == 0 {
			fmt.Println("No data in the database to generate stats.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "AREA\tLEADS\tHOT\tAVG P70\tBEST P70\t")

		var totalLeads, totalNotable int
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t£%.0f\t£%d\t\n", s.Area, s.LeadCount, s.NotableCount, s.AvgProfit70, s.BestProfit70)
			totalLeads += s.LeadCount
			totalNotable += s.NotableCount
		}

		fmt.Fprintln(w, " \t \t \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t \t \t\n", totalLeads, totalNotable)

		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: rentradar.sqlite in CWD)")
}
