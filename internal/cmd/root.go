package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quorumlabs/boardroom/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Turn scheduler for multi-agent boardroom conversations",
	Long: `Boardroom schedules speaking turns for a roster of autonomous agents
holding a round-based conversation. Each turn it classifies the session
phase, scores every participant on fairness and recent mentions, and
hands the floor to the best candidate.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/boardroom/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/boardroom")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("BOARDROOM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., BOARDROOM_SESSION_TOTAL_TURNS for session.total_turns
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
