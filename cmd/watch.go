package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// watch: the long-running daemon form of poll. Cycles until the process is
// signalled; a failed cycle degrades to the backoff cooldown, never an exit.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll continuously on an interval with jitter",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, db, err := buildPoller(cmd)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}
		return p.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addCycleFlags(watchCmd)
	watchCmd.Flags().Duration("interval", 0, "Base duration between cycles (overrides poll.interval)")
	watchCmd.Flags().Duration("jitter", 0, "Random sleep offset bound (overrides poll.jitter)")
	watchCmd.Flags().Duration("backoff", 0, "Cooldown after a failed cycle (overrides poll.backoff)")
	viper.BindPFlag("poll.interval", watchCmd.Flags().Lookup("interval"))
	viper.BindPFlag("poll.jitter", watchCmd.Flags().Lookup("jitter"))
	viper.BindPFlag("poll.backoff", watchCmd.Flags().Lookup("backoff"))
}
