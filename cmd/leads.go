package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatguydan86/rentradar/pkg/storage"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Show recently archived leads (default 50)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		limit, _ := cmd.Flags().GetInt("limit")
		area, _ := cmd.Flags().GetString("area")
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
		leads, err := db.ListRecent(cmd.Context(), limit, area)
		if err != nil {
			return err
		}
		for _, l := range leads {
			ts := l.EmittedAt.Format("2006-01-02 15:04:05")
			flag := " "
			if l.Notable {
				flag = "🔥"
			}
			fmt.Printf("%s  %-12s  £%d/mo  p70=£%d (%s %.1f)%s  %s\n",
				ts, l.Area, l.RentPCM, l.Profit70, l.Band, l.Score, flag, l.Address)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leadsCmd)
	leadsCmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: rentradar.sqlite in CWD)")
	leadsCmd.Flags().Int("limit", 50, "Number of recent leads to show")
	leadsCmd.Flags().String("area", "", "Only show leads for this area")
}
