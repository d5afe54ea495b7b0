// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the apollo-lifter CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and shared by all subcommands.
var logger = zap.NewNop()

const (
	defaultTranscript = "bridged/a13-problem"
	defaultGlossary   = "Spacelog/missions/shared/glossary/apollo"
	defaultDB         = "apollo13.db"
)

// rootCmd is the base command for the apollo-lifter CLI.
var rootCmd = &cobra.Command{
	Use:   "apollo-lifter",
	Short: "Lift the Apollo 13 air-to-ground transcript into RDF",
	Long: `apollo-lifter reads a Spacelog mission transcript and describes each
timestamped utterance as a SEM/PROV-O event: who spoke, where they were,
who they addressed, and which glossary terms they used.

lift writes the triples as Turtle or N-Triples. store, query, and export
keep the lifted events in a SQLite database for later lookups.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", zap.String("path", f))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./apollo-lifter.yaml or ~/.config/apollo-lifter/apollo-lifter.yaml)")
	pf.String("transcript", defaultTranscript, "transcript path or http(s) URL")
	pf.String("glossary", defaultGlossary, "glossary path or http(s) URL (empty disables labels)")
	pf.String("db", defaultDB, "SQLite database for store, query, and export")
	pf.BoolP("verbose", "v", false, "enable debug logging")

	for _, key := range []string{"transcript", "glossary", "db", "verbose"} {
		viper.BindPFlag(key, pf.Lookup(key))
	}

	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", "apollo-lifter/"+version)
	viper.SetDefault("http.max_retries", 5)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("apollo-lifter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "apollo-lifter"))
		}
	}

	viper.SetEnvPrefix("APOLLO_LIFTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
