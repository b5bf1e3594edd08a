// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the blogen CLI:
// run configuration and the outcome of a generation run.
package types

// Post records where a generated post was written.
type Post struct {
	// Title is the post title entered by the user.
	Title string `json:"title" yaml:"title"`

	// Path is the file the generated content was written to
	// (e.g. "generated/My Post.html").
	Path string `json:"path" yaml:"path"`

	// Slug is the URL-safe form of Title (e.g. "my-post").
	Slug string `json:"slug" yaml:"slug"`
}
