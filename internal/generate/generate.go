// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs one blog post generation: it makes sure an API key
// is stored, interviews the user, requests a completion and writes the
// result under the output directory.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/blogen/internal/completion"
	"github.com/pdiddy/blogen/internal/content"
	"github.com/pdiddy/blogen/internal/dialogue"
	"github.com/pdiddy/blogen/internal/logger"
	"github.com/pdiddy/blogen/internal/secrets"
	"github.com/pdiddy/blogen/pkg/types"
)

// ErrMissingPostTitle is returned when the interview yields no post title.
var ErrMissingPostTitle = errors.New("post title is required")

const (
	apiKeysURL    = "https://platform.openai.com/account/api-keys"
	apiKeyLabel   = "Your API KEY"
	maxTokenLabel = "Max Token"
	tokenNote     = "Note: 1,000 tokens is about 750 words."
)

// ClientFactory builds a completion client for a secret.
type ClientFactory func(secret string) (completion.Client, error)

// Generator wires the interview, the completion call and the file output.
type Generator struct {
	FS        afero.Fs
	Term      *dialogue.Terminal
	Creds     *secrets.Store
	NewClient ClientFactory
	Log       *logger.Logger
	Config    types.Config
}

// Outcome describes how a run ended.
type Outcome struct {
	// SetupOnly is set when the run stored a new API key and stopped.
	SetupOnly bool

	// Post is the generated post; zero when SetupOnly is set.
	Post types.Post
}

// Run performs one generation. Without a stored key it runs the setup
// dialogue, stores the key and returns with SetupOnly set and no network
// call made.
func (g *Generator) Run(ctx context.Context) (Outcome, error) {
	secret, err := g.Creds.Load()
	if errors.Is(err, secrets.ErrNoCredential) {
		g.Log.Info("no stored API key, running setup", "env_file", g.Creds.Path())
		if err := Setup(g.Term, g.Creds); err != nil {
			return Outcome{}, err
		}
		g.Term.Println("API key saved successfully. Please run again to continue.")
		return Outcome{SetupOnly: true}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("loading API key: %w", err)
	}
	g.Log.Debug("API key loaded", "env_file", g.Creds.Path())

	kinds, err := dialogue.ParseKinds(g.Config.Prompt.Questions)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading question list: %w", err)
	}
	if !slices.Contains(kinds, dialogue.KindTitle) {
		return Outcome{}, fmt.Errorf("question list has no %q question: %w", dialogue.KindTitle, ErrMissingPostTitle)
	}

	prompt, err := dialogue.Assemble(g.Term, kinds)
	if err != nil {
		return Outcome{}, err
	}
	title := prompt.PostTitle()
	if strings.TrimSpace(title) == "" {
		return Outcome{}, ErrMissingPostTitle
	}
	prompt.Append(g.Config.Prompt.StyleSuffix)
	g.Log.Debug("prompt assembled", "title", title, "questions", len(prompt.Questions), "prompt_len", len(prompt.Text))

	maxTokens, err := AskMaxTokens(g.Term)
	if err != nil {
		return Outcome{}, err
	}

	g.Term.Println("Please wait...")
	client, err := g.NewClient(secret)
	if err != nil {
		return Outcome{}, fmt.Errorf("creating completion client: %w", err)
	}
	resp, err := client.Complete(ctx, prompt.Text, maxTokens)
	if err != nil {
		return Outcome{}, err
	}
	g.Log.Debug("completion received", "bytes", len(resp.JSON()), "max_tokens", maxTokens)

	post, err := g.write(resp, title)
	if err != nil {
		return Outcome{}, err
	}

	abs, err := filepath.Abs(post.Path)
	if err != nil {
		abs = post.Path
	}
	g.Term.Printf("Generated content saved to: %s\n", abs)
	g.Term.Printf("Slug: %s\n", post.Slug)
	g.Log.Info("post generated", "path", post.Path, "slug", post.Slug)
	return Outcome{Post: post}, nil
}

func (g *Generator) write(resp completion.Response, title string) (types.Post, error) {
	dir := g.Config.Output.Dir
	if err := g.FS.MkdirAll(dir, 0o755); err != nil {
		return types.Post{}, fmt.Errorf("creating output directory: %w", err)
	}
	path, err := content.Save(g.FS, resp, content.OutputPath(dir, title))
	if err != nil {
		return types.Post{}, err
	}
	return types.Post{Title: title, Path: path, Slug: content.Slug(title)}, nil
}

// Setup asks for an API key and stores it, replacing any previous one.
func Setup(t *dialogue.Terminal, store *secrets.Store) error {
	t.Printf("Visit %s to get your Open AI API key\n\n", apiKeysURL)
	key, err := t.AskRequired(apiKeyLabel)
	if err != nil {
		return err
	}
	if err := store.Save(key); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}
	return nil
}

// AskMaxTokens asks for a positive token budget, re-asking until one is given.
func AskMaxTokens(t *dialogue.Terminal) (int, error) {
	t.Printf("\n%s\n\n", tokenNote)
	answer, err := t.AskNumeric(maxTokenLabel, func(s string) bool {
		n, err := strconv.Atoi(s)
		return err == nil && n > 0
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}
