// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blogen CLI, which interviews the
// user and generates an HTML blog post with a text-completion API.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blogen/internal/logger"
	"github.com/pdiddy/blogen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the effective configuration, decoded before every command runs.
	cfg types.Config

	// log is the diagnostic logger for the current invocation.
	log = logger.Nop()
)

// rootCmd is the base command for the blogen CLI. Run without a subcommand
// it behaves like "blogen generate".
var rootCmd = &cobra.Command{
	Use:   "blogen",
	Short: "Generate SEO-friendly HTML blog posts from a short interview",
	Long: `blogen asks a few questions about the post you want (title, keywords,
word count, extra notes), turns the answers into a prompt, sends it to a
text-completion API and saves the result to generated/<title>.html.

On first run it asks for an API key, stores it in .env and exits; run it
again to generate a post.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("decoding configuration: %w", err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := logger.New(cfg.Log.Mode, verbose)
		if err != nil {
			return err
		}
		log = l.With("run_id", uuid.NewString(), "command", cmd.Name())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blogen.yaml or ~/.config/blogen/blogen.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blogen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blogen"))
		}
	}

	setDefaults(viper.GetViper(), types.DefaultConfig())

	viper.SetEnvPrefix("BLOGEN")
	viper.SetEnvKeyReplacer(replacer())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// replacer maps nested keys like "ai.model" to BLOGEN_AI_MODEL.
func replacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// setDefaults registers every configuration key so that environment
// variables and Unmarshal see it even without a config file.
func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("ai.model", d.AI.Model)
	v.SetDefault("ai.base_url", d.AI.BaseURL)
	v.SetDefault("ai.temperature", d.AI.Temperature)
	v.SetDefault("ai.top_p", d.AI.TopP)
	v.SetDefault("ai.frequency_penalty", d.AI.FrequencyPenalty)
	v.SetDefault("ai.presence_penalty", d.AI.PresencePenalty)
	v.SetDefault("credentials.env_file", d.Credentials.EnvFile)
	v.SetDefault("credentials.key", d.Credentials.Key)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("prompt.questions", d.Prompt.Questions)
	v.SetDefault("prompt.style_suffix", d.Prompt.StyleSuffix)
	v.SetDefault("input.max_attempts", d.Input.MaxAttempts)
	v.SetDefault("log.mode", d.Log.Mode)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
