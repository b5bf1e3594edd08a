// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blogen/internal/completion"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{
			name:    "three choices in order",
			payload: `{"choices":[{"text":"A"},{"text":"B"},{"text":"C"}]}`,
			want:    []string{"A", "B", "C"},
		},
		{
			name:    "extra fields ignored",
			payload: `{"id":"x","choices":[{"index":0,"text":"<h1>T</h1>","finish_reason":"stop"}],"usage":{"total_tokens":9}}`,
			want:    []string{"<h1>T</h1>"},
		},
		{
			name:    "no choices",
			payload: `{"choices":[]}`,
			want:    nil,
		},
		{
			name:    "empty payload",
			payload: ``,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(completion.NewResponse([]byte(tt.payload)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveConcatenatesWithoutSeparator(t *testing.T) {
	fs := afero.NewMemMapFs()
	resp := completion.NewResponse([]byte(`{"choices":[{"text":"A"},{"text":"B"},{"text":"C"}]}`))

	path, err := Save(fs, resp, "out.html")
	require.NoError(t, err)
	assert.Equal(t, "out.html", path)

	data, err := afero.ReadFile(fs, "out.html")
	require.NoError(t, err)
	assert.Equal(t, "ABC", string(data))
}

func TestSaveOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "post.html", []byte("old content that is longer"), 0o644))

	_, err := Save(fs, completion.NewResponse([]byte(`{"choices":[{"text":"new"}]}`)), "post.html")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "post.html")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSaveReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := Save(fs, completion.NewResponse([]byte(`{"choices":[{"text":"x"}]}`)), "post.html")
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		dir, title, want string
	}{
		{"generated", "My Post", filepath.Join("generated", "My Post.html")},
		{"out", "Cats & Dogs", filepath.Join("out", "Cats & Dogs.html")},
		{"generated", "TCP/IP basics", filepath.Join("generated", "TCP-IP basics.html")},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.dir, tt.title))
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"My Post", "my-post"},
		{"  Ten Tips for Go  ", "ten-tips-for-go"},
		{"Hello, World!", "hello-world"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}
