// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blogen/internal/dialogue"
	"github.com/pdiddy/blogen/internal/generate"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Store or replace the API key",
	Long: `Setup asks for an API key and writes it to the credentials env file,
replacing whatever was stored before. Generate runs the same dialogue
automatically when no key is stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := credentialStore(cfg)
		term := dialogue.NewTerminal(os.Stdin, os.Stdout)
		if err := generate.Setup(term, store); err != nil {
			return err
		}
		log.Info("API key stored", "env_file", store.Path())
		term.Println("API key saved successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
