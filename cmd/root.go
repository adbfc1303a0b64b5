package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatguydan86/rentradar/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `                 _                 _
 _ __ ___ _ __ | |_ _ __ __ _  __| | __ _ _ __
| '__/ _ \ '_ \| __| '__/ _` + "`" + ` |/ _` + "`" + ` |/ _` + "`" + ` | '__|
| | |  __/ | | | |_| | | (_| | (_| | (_| | |
|_|  \___|_| |_|\__|_|  \__,_|\__,_|\__,_|_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rentradar",
	Short: "A rent-to-SA deal scanner for rental listings.",
	Long: LOGO + `rentradar polls rental listing searches for the configured areas, runs each
candidate through a short-let profitability model, and forwards new leads to
your webhook.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rentradar.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".rentradar")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.rentradar.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for all keys
	viper.SetDefault("webhook.url", "")
	viper.SetDefault("poll.interval", "1h")
	viper.SetDefault("poll.jitter", "5m")
	viper.SetDefault("poll.backoff", "5m")
	viper.SetDefault("search.max_price", 1500)
	viper.SetDefault("search.min_price", 0)
	viper.SetDefault("search.page_size", 24)
	viper.SetDefault("profit.target", 1300)
	viper.SetDefault("profit.booking_fee", 0.15)
	viper.SetDefault("profit.notable_margin", 100)
	viper.SetDefault("profit.utilities", 250)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
