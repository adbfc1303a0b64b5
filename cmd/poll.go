package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thatguydan86/rentradar/internal/utils"
	"github.com/thatguydan86/rentradar/pkg/areas"
	"github.com/thatguydan86/rentradar/pkg/engine"
	"github.com/thatguydan86/rentradar/pkg/notify"
	"github.com/thatguydan86/rentradar/pkg/poller"
	"github.com/thatguydan86/rentradar/pkg/rightmove"
	"github.com/thatguydan86/rentradar/pkg/storage"
)

// pollCmd implements: rentradar poll
//
// Runs exactly one evaluation cycle across all configured areas and prints
// every newly-qualifying lead. Webhook delivery and the sqlite archive are
// opt-in.
var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run one evaluation cycle across all configured areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command: '%s'. See 'rentradar poll --help'", args[0])
		}

		p, db, err := buildPoller(cmd)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		leads, err := p.RunCycle(cmd.Context())
		if err != nil {
			return err
		}
		if len(leads) == 0 {
			fmt.Println("No new leads this run.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pollCmd)
	addCycleFlags(pollCmd)
}

// addCycleFlags registers the flags shared by poll and watch.
func addCycleFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("notify", false, "Deliver new leads to the configured webhook")
	cmd.Flags().Bool("db", false, "Archive new leads to the database")
	cmd.Flags().String("dbpath", "", "Path to SQLite DB file (default: rentradar.sqlite in CWD)")
}

// buildPoller wires the collaborators from config and flags. The returned DB
// is non-nil only when --db was given; the caller owns closing it.
func buildPoller(cmd *cobra.Command) (*poller.Poller, *storage.DB, error) {
	areaCfgs, err := areas.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	proxy, _ := cmd.Flags().GetString("proxy")
	fetcher, err := rightmove.NewClient(proxy)
	if err != nil {
		return nil, nil, err
	}
	fetcher.PageSize = viper.GetInt("search.page_size")

	cfg := poller.Config{
		Areas:    areaCfgs,
		Fetcher:  fetcher,
		Log:      utils.Log,
		Interval: viper.GetDuration("poll.interval"),
		Jitter:   viper.GetDuration("poll.jitter"),
		Backoff:  viper.GetDuration("poll.backoff"),
		OnLead:   printLead,
	}

	if doNotify, _ := cmd.Flags().GetBool("notify"); doNotify {
		webhookURL := viper.GetString("webhook.url")
		if webhookURL == "" {
			return nil, nil, fmt.Errorf("--notify requires webhook.url in the config")
		}
		cfg.Notifier = notify.NewWebhook(webhookURL)
	}

	var db *storage.DB
	if useDB, _ := cmd.Flags().GetBool("db"); useDB {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		if dbPath == "" {
			dbPath = "rentradar.sqlite"
		}
		db, err = storage.Open(dbPath)
		if err != nil {
			return nil, nil, err
		}
		cfg.Archiver = db
	}

	p, err := poller.New(cfg)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, err
	}
	return p, db, nil
}

func printLead(lead engine.Lead) {
	fmt.Println("────────────────────────────────────────")
	fmt.Print(notify.Preview(lead))
	fmt.Println("────────────────────────────────────────")
}
