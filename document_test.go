// File: tomlcli/document_test.go
package tomlcli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetGetRoundTrip tests that set followed by get returns the
// written value for every value kind.
func TestSetGetRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		path string
		raw  string
	}{
		{"Boolean", "server.ssl.enabled", "true"},
		{"Integer", "server.port", "9090"},
		{"Float", "limits.ratio", "0.75"},
		{"String", "server.host", "example.com"},
		{"Array", "feature_flags.beta_testers", "[x,y,z]"},
		{"InlineTable", "server.ssl", "{enabled=true,level=2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDoc(t)
			want := Coerce(tt.raw)
			require.NoError(t, doc.Set(tt.path, want))

			got, err := doc.Get(tt.path)
			require.NoError(t, err)
			assert.True(t, want.Equal(got))
		})
	}
}

// TestRemoveThenGet tests that a removed path fails resolution.
func TestRemoveThenGet(t *testing.T) {
	doc := sampleDoc(t)
	require.NoError(t, doc.Remove("database.password"))

	_, err := doc.Get("database.password")
	assert.ErrorIs(t, err, ErrPathNotFound)

	// Siblings under database are untouched.
	user, err := doc.Get("database.user")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.StringValue())
}

// TestDocumentRename tests the engine-level move.
func TestDocumentRename(t *testing.T) {
	doc := sampleDoc(t)
	original, err := doc.Get("server.ssl.enabled")
	require.NoError(t, err)

	require.NoError(t, doc.Rename("server.ssl.enabled", "server.ssl.enable_tls"))

	_, err = doc.Get("server.ssl.enabled")
	assert.ErrorIs(t, err, ErrPathNotFound)

	moved, err := doc.Get("server.ssl.enable_tls")
	require.NoError(t, err)
	assert.True(t, original.Equal(moved))
}

// TestBulkMerge tests the bulk-set flow: JSON payload -> node tree ->
// deep merge.
func TestBulkMerge(t *testing.T) {
	t.Run("AddsWithoutDisturbingSiblings", func(t *testing.T) {
		doc := sampleDoc(t)
		patch, err := ParsePatch([]byte(`{"server":{"ssl":{"enabled":true}},"database":{"new_key":999}}`))
		require.NoError(t, err)
		require.NoError(t, doc.Merge(patch))

		enabled, err := doc.Get("server.ssl.enabled")
		require.NoError(t, err)
		assert.True(t, enabled.BoolValue())

		newKey, err := doc.Get("database.new_key")
		require.NoError(t, err)
		assert.Equal(t, int64(999), newKey.IntValue())

		// Pre-existing keys under database survive.
		db, err := doc.Get("database")
		require.NoError(t, err)
		assert.Equal(t, []string{"user", "password", "retries", "new_key"}, db.Keys())
	})

	t.Run("RejectsNonTablePayload", func(t *testing.T) {
		doc := sampleDoc(t)
		patch, err := ParsePatch([]byte(`42`))
		require.NoError(t, err)
		assert.ErrorIs(t, doc.Merge(patch), ErrParse)
	})

	t.Run("RejectsNull", func(t *testing.T) {
		_, err := ParsePatch([]byte(`{"a":null}`))
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		_, err := ParsePatch([]byte(`{"a":`))
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("YAMLPayload", func(t *testing.T) {
		doc := sampleDoc(t)
		patch, err := ParsePatch([]byte("server:\n  ssl:\n    level: 3\n"))
		require.NoError(t, err)
		require.NoError(t, doc.Merge(patch))

		level, err := doc.Get("server.ssl.level")
		require.NoError(t, err)
		assert.Equal(t, int64(3), level.IntValue())
	})
}

// TestScan tests subtree decoding into structs via mapstructure.
func TestScan(t *testing.T) {
	type SSLConfig struct {
		Enabled     bool   `toml:"enabled"`
		Certificate string `toml:"certificate"`
	}
	type ServerConfig struct {
		Host string    `toml:"host"`
		Port int       `toml:"port"`
		SSL  SSLConfig `toml:"ssl"`
	}

	doc := sampleDoc(t)

	t.Run("Subtree", func(t *testing.T) {
		var server ServerConfig
		require.NoError(t, doc.Scan("server", &server))
		assert.Equal(t, "localhost", server.Host)
		assert.Equal(t, 8080, server.Port)
		assert.Equal(t, "cert.pem", server.SSL.Certificate)
		assert.False(t, server.SSL.Enabled)
	})

	t.Run("WholeDocument", func(t *testing.T) {
		var all struct {
			Server ServerConfig `toml:"server"`
		}
		require.NoError(t, doc.Scan("", &all))
		assert.Equal(t, "localhost", all.Server.Host)
	})

	t.Run("MissingPath", func(t *testing.T) {
		var server ServerConfig
		assert.ErrorIs(t, doc.Scan("nope", &server), ErrPathNotFound)
	})

	t.Run("NonTablePath", func(t *testing.T) {
		var server ServerConfig
		assert.ErrorIs(t, doc.Scan("server.host", &server), ErrNotATable)
	})
}

// TestFileRoundTrip tests LoadFile/SaveFile against a real file.
func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0644))

	doc, err := LoadFile(path)
	require.NoError(t, err)

	require.NoError(t, doc.Set("server.ssl.enabled", Coerce("true")))
	require.NoError(t, SaveFile(path, doc))

	again, err := LoadFile(path)
	require.NoError(t, err)
	enabled, err := again.Get("server.ssl.enabled")
	require.NoError(t, err)
	assert.True(t, enabled.BoolValue())

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("= broken"), 0644))
		_, err := LoadFile(bad)
		assert.ErrorIs(t, err, ErrParse)
	})
}
