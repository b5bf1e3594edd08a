// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/blogen/internal/completion"
	"github.com/pdiddy/blogen/internal/dialogue"
	"github.com/pdiddy/blogen/internal/generate"
	"github.com/pdiddy/blogen/internal/secrets"
	"github.com/pdiddy/blogen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Interview the user and generate a blog post",
	Long: `Generate asks for the post title, keywords, word count and an optional
note, appends the house style and SEO instructions, asks for a token budget
and writes the completion to <output-dir>/<title>.html. The slug for the
post URL is printed alongside the saved path.

Without a stored API key it asks for one, saves it and exits.`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", "", "completion model identifier (overrides ai.model)")
	cmd.Flags().String("base-url", "", "OpenAI-compatible endpoint (overrides ai.base_url)")
	cmd.Flags().String("output-dir", "", "directory for generated posts (overrides output.dir)")
}

// applyGenerateFlags copies explicitly set flags over the loaded configuration.
func applyGenerateFlags(cmd *cobra.Command, c *types.Config) {
	flags := cmd.Flags()
	if flags.Changed("model") {
		c.AI.Model, _ = flags.GetString("model")
	}
	if flags.Changed("base-url") {
		c.AI.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("output-dir") {
		c.Output.Dir, _ = flags.GetString("output-dir")
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyGenerateFlags(cmd, &cfg)

	term := dialogue.NewTerminal(os.Stdin, os.Stdout)
	term.MaxAttempts = cfg.Input.MaxAttempts

	g := &generate.Generator{
		FS:        afero.NewOsFs(),
		Term:      term,
		Creds:     credentialStore(cfg),
		NewClient: openAIFactory(cfg.AI),
		Log:       log,
		Config:    cfg,
	}

	outcome, err := g.Run(cmd.Context())
	if err != nil {
		log.Error("generation failed", "error", err)
		return err
	}
	if outcome.SetupOnly {
		log.Debug("setup finished, exiting")
	}
	return nil
}

func credentialStore(c types.Config) *secrets.Store {
	return secrets.NewOSStore(c.Credentials.EnvFile, c.Credentials.Key)
}

// openAIFactory returns a ClientFactory bound to the AI settings.
func openAIFactory(ai types.AIConfig) generate.ClientFactory {
	return func(secret string) (completion.Client, error) {
		return completion.NewOpenAI(completion.Settings{
			APIKey:  secret,
			Model:   ai.Model,
			BaseURL: ai.BaseURL,
			Sampling: completion.Sampling{
				Temperature:      ai.Temperature,
				TopP:             ai.TopP,
				FrequencyPenalty: ai.FrequencyPenalty,
				PresencePenalty:  ai.PresencePenalty,
			},
		})
	}
}
