// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content writes generated text to disk and derives the file name
// and slug for a post.
package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/pdiddy/blogen/internal/completion"
)

const fileExt = ".html"

// Segments returns the text of each choice in the response, in response order.
func Segments(resp completion.Response) []string {
	var out []string
	for _, v := range gjson.GetBytes(resp.JSON(), "choices.#.text").Array() {
		out = append(out, v.String())
	}
	return out
}

// Save concatenates the response segments without separators and writes
// them to path, replacing any existing file. It returns the path written.
// The content is written exactly as returned.
func Save(fs afero.Fs, resp completion.Response, path string) (string, error) {
	body := strings.Join(Segments(resp), "")
	if err := afero.WriteFile(fs, path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// OutputPath returns dir/<title>.html. Path separators in title are
// replaced with "-" so the file always lands directly in dir.
func OutputPath(dir, title string) string {
	name := strings.NewReplacer("/", "-", `\`, "-").Replace(title)
	return filepath.Join(dir, name+fileExt)
}

// Slug returns the URL-safe form of title.
func Slug(title string) string {
	return slug.Make(title)
}
