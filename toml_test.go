// File: tomlcli/toml_test.go
package tomlcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `[server]
host = "localhost"
port = 8080

[server.ssl]
enabled = false
certificate = "cert.pem"

[database]
user = "admin"
password = "secret"
retries = 3

[feature_flags]
new_login = true
beta_testers = ["alice", "bob"]

[deep]
[deep.nesting]
[deep.nesting.structure]
key1 = "value1"
`

func sampleDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(sampleTOML))
	require.NoError(t, err)
	return doc
}

// TestParse tests decoding with source-order reconstruction.
func TestParse(t *testing.T) {
	doc := sampleDoc(t)

	t.Run("TopLevelOrder", func(t *testing.T) {
		assert.Equal(t, []string{"server", "database", "feature_flags", "deep"}, doc.Keys())
	})

	t.Run("NestedOrder", func(t *testing.T) {
		server, err := doc.Get("server")
		require.NoError(t, err)
		assert.Equal(t, []string{"host", "port", "ssl"}, server.Keys())
	})

	t.Run("ScalarTypes", func(t *testing.T) {
		host, err := doc.Get("server.host")
		require.NoError(t, err)
		assert.Equal(t, KindString, host.Kind())
		assert.Equal(t, "localhost", host.StringValue())

		port, err := doc.Get("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port.IntValue())

		enabled, err := doc.Get("server.ssl.enabled")
		require.NoError(t, err)
		assert.False(t, enabled.BoolValue())
	})

	t.Run("Array", func(t *testing.T) {
		testers, err := doc.Get("feature_flags.beta_testers")
		require.NoError(t, err)
		require.Equal(t, KindArray, testers.Kind())
		assert.Equal(t, "alice", testers.Items()[0].StringValue())
		assert.Equal(t, "bob", testers.Items()[1].StringValue())
	})

	t.Run("DeepNesting", func(t *testing.T) {
		key1, err := doc.Get("deep.nesting.structure.key1")
		require.NoError(t, err)
		assert.Equal(t, "value1", key1.StringValue())
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte("not = valid = toml"))
		assert.ErrorIs(t, err, ErrParse)
	})
}

// TestEncode tests the ordered writer and the parse/encode round-trip.
func TestEncode(t *testing.T) {
	t.Run("RoundTripPreservesStructure", func(t *testing.T) {
		doc := sampleDoc(t)
		again, err := Parse(Encode(doc))
		require.NoError(t, err)
		assert.True(t, doc.Root().Equal(again.Root()),
			"round trip changed document:\n%s", Encode(doc))
	})

	t.Run("EncodeIsStable", func(t *testing.T) {
		doc := sampleDoc(t)
		assert.Equal(t, string(Encode(doc)), string(Encode(doc)))
	})

	t.Run("ScalarsBeforeSections", func(t *testing.T) {
		doc, err := Parse([]byte("[a]\nx = 1\n[a.b]\ny = 2\n"))
		require.NoError(t, err)
		assert.Equal(t, "[a]\nx = 1\n\n[a.b]\ny = 2\n", string(Encode(doc)))
	})

	t.Run("FloatKeepsPoint", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("ratio", Float(2)))
		assert.Equal(t, "ratio = 2.0\n", string(Encode(doc)))

		again, err := Parse(Encode(doc))
		require.NoError(t, err)
		ratio, err := again.Get("ratio")
		require.NoError(t, err)
		assert.Equal(t, KindFloat, ratio.Kind())
	})

	t.Run("ArrayOfTables", func(t *testing.T) {
		src := "[[fruit]]\nname = \"apple\"\n\n[[fruit]]\nname = \"pear\"\n"
		doc, err := Parse([]byte(src))
		require.NoError(t, err)

		fruit, err := doc.Get("fruit")
		require.NoError(t, err)
		require.Equal(t, KindArray, fruit.Kind())
		require.Equal(t, 2, fruit.Len())

		assert.Equal(t, src, string(Encode(doc)))
	})

	t.Run("QuotedKeys", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("servers", NewTable()))
		servers, err := doc.Get("servers")
		require.NoError(t, err)
		servers.SetChild("my host", String("10.0.0.1"))
		assert.Equal(t, "[servers]\n\"my host\" = \"10.0.0.1\"\n", string(Encode(doc)))
	})

	t.Run("EscapesControlCharacters", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("k", String("a\x01b")))
		require.NoError(t, doc.Set("multi", String("line1\nline2\t\"quoted\" \\slash")))

		encoded := Encode(doc)
		assert.Contains(t, string(encoded), `k = "ab"`)
		assert.Contains(t, string(encoded), `multi = "line1\nline2\t\"quoted\" \\slash"`)

		// The escaped form must parse back to the original bytes.
		reparsed, err := Parse(encoded)
		require.NoError(t, err)
		k, err := reparsed.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "a\x01b", k.StringValue())
		multi, err := reparsed.Get("multi")
		require.NoError(t, err)
		assert.Equal(t, "line1\nline2\t\"quoted\" \\slash", multi.StringValue())
	})

	t.Run("EscapesControlCharacterInKey", func(t *testing.T) {
		doc := NewDocument()
		doc.Root().SetChild("bad\x02key", Integer(1))

		encoded := Encode(doc)
		assert.Equal(t, "\"bad\\u0002key\" = 1\n", string(encoded))

		reparsed, err := Parse(encoded)
		require.NoError(t, err)
		assert.Equal(t, []string{"bad\x02key"}, reparsed.Keys())
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		assert.Empty(t, Encode(NewDocument()))
	})

	t.Run("InlineValueFromCoerce", func(t *testing.T) {
		doc := NewDocument()
		require.NoError(t, doc.Set("server.ssl", Coerce("{enabled=true,level=2}")))
		again, err := Parse(Encode(doc))
		require.NoError(t, err)
		level, err := again.Get("server.ssl.level")
		require.NoError(t, err)
		assert.Equal(t, int64(2), level.IntValue())
	})
}
