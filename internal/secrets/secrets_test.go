// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "API_SECRET"

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, fs afero.Fs)
		env     map[string]string
		want    string
		wantErr error
	}{
		{
			name: "reads key and trims whitespace",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, ".env", "API_SECRET=  sk-abc123  \n")
			},
			want: "sk-abc123",
		},
		{
			name: "reads quoted value",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, ".env", `API_SECRET="sk-quoted"`+"\n")
			},
			want: "sk-quoted",
		},
		{
			name:    "missing file means no credential",
			setup:   func(t *testing.T, fs afero.Fs) {},
			wantErr: ErrNoCredential,
		},
		{
			name: "blank value means no credential",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, ".env", "API_SECRET=\n")
			},
			wantErr: ErrNoCredential,
		},
		{
			name: "other keys are ignored",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, ".env", "OTHER=value\n")
			},
			wantErr: ErrNoCredential,
		},
		{
			name: "environment wins over file",
			setup: func(t *testing.T, fs afero.Fs) {
				writeFile(t, fs, ".env", "API_SECRET=from-file\n")
			},
			env:  map[string]string{testKey: "from-env"},
			want: "from-env",
		},
		{
			name:  "environment alone is enough",
			setup: func(t *testing.T, fs afero.Fs) {},
			env:   map[string]string{testKey: "from-env"},
			want:  "from-env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tt.setup(t, fs)
			store := NewStore(fs, ".env", testKey, func(k string) string { return tt.env[k] })

			got, err := store.Load()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, ".env", testKey, nil)

	require.NoError(t, store.Save("  sk-new \n"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-new", got)

	info, err := fs.Stat(".env")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestSaveOverwritesWholesale(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, ".env", "API_SECRET=old\nSTALE=1\n")
	store := NewStore(fs, ".env", testKey, nil)

	require.NoError(t, store.Save("replacement"))

	data, err := afero.ReadFile(fs, ".env")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "STALE")
	assert.NotContains(t, string(data), "old")

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "replacement", got)
}

func TestSaveRejectsBlank(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, ".env", testKey, nil)

	assert.Error(t, store.Save("   "))
	exists, err := afero.Exists(fs, ".env")
	require.NoError(t, err)
	assert.False(t, exists)
}

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
}
