package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "COLLATOR"

var (
	flagConfig   string
	flagLogLevel string
	log          zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:               "collator",
	Short:             "Collator of the adder parachain",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"config file (yaml, toml or json); flags and COLLATOR_* env vars take precedence")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "loglevel", "info",
		"level of logging output (trace, debug, info, warn, error)")
	_ = viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if flagConfig == "" {
		return
	}
	viper.SetConfigFile(flagConfig)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal().Err(err).Str("config", flagConfig).Msg("could not read config file")
	}
}

func setupLogger(*cobra.Command, []string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("loglevel")))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log = log.Level(level)
	return nil
}
