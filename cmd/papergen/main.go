// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the papergen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HorizonHnk/papergen/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// resolveAPIKey returns the generation API key: an explicit flag value
// wins, then the PAPERGEN_API_KEY environment, then .secrets/gemini-api-key.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString("api_key"); v != "" {
		return v
	}
	return loadedSecrets[secrets.GeminiKeyFile]
}

// rootCmd is the base command for the papergen CLI.
var rootCmd = &cobra.Command{
	Use:   "papergen",
	Short: "Generate formatted academic documents from free-form text",
	Long: `papergen turns free-form text or an uploaded file into a fully formatted
academic document (thesis or conference paper) by prompting a generative AI
API, then exports the result as standalone HTML, Word-compatible HTML, or
plain text.

Each pipeline stage is a subcommand: extract reads text out of uploaded
artifacts (plain text, PDF, DOCX, images via OCR), generate runs the full
prompt-compose-sanitize pipeline, and export re-renders a generated
document into download formats.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./papergen.yaml or ~/.config/papergen/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "generation API key (overrides PAPERGEN_API_KEY and .secrets/)")
	rootCmd.PersistentFlags().String("model", "", "model identifier (default gemini-2.0-flash)")
}

func initConfig() {
	// A .env file may carry PAPERGEN_* variables; absence is fine.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("papergen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "papergen"))
		}
	}

	viper.SetEnvPrefix("PAPERGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
