package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"

	"github.com/perfband/perfband"
)

var config *perfband.Config

var rootCmd = &cobra.Command{
	Use:   "perfband",
	Short: "perfband profiling demo tool",
	Long:  "perfband is a CPU/bandwidth profiling helper written in Go",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().String("config", "perfband.yaml", "config file")
}

func main() {
	viper.SetEnvPrefix("PERFBAND_")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	configFile := viper.GetString("config")
	if _, err := os.Stat(configFile); err == nil {
		loaded, err := perfband.LoadConfig(configFile)
		if err != nil {
			log.Fatal(err)
		}

		config = loaded
	} else {
		log.Debugf("config file %s does not exist, using defaults", configFile)
		config = &perfband.Config{}
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
