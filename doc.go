// File: tomlcli/doc.go

// Package tomlcli implements the document engine behind the tomlcli
// command line tool: path-addressed reading and mutation of TOML
// documents with bulk deep merge and multi-format export.
//
// Features:
//   - Dotted key path resolution with create/remove/rename semantics
//   - Free-form value coercion (bool, int, float, inline table, array, string)
//   - Recursive deep merge of update payloads (JSON or YAML)
//   - Ordered document model: tables keep insertion order end to end
//   - Flattened path/value view with substring search
//   - plaintext, csv, json and table export renderers
//
// Quick Start:
//
//	doc, err := tomlcli.LoadFile("config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := doc.Set("server.ssl.enabled", tomlcli.Coerce("true")); err != nil {
//	    log.Fatal(err)
//	}
//
//	value, _ := doc.Get("server.ssl.enabled")
//	fmt.Println(value) // true
//
//	if err := tomlcli.SaveFile("config.toml", doc); err != nil {
//	    log.Fatal(err)
//	}
//
// A Document is owned by a single invocation; operations mutate the
// tree in place and nothing here is safe for concurrent use. Errors
// are detected eagerly: a failing operation leaves the file on disk
// untouched because saving is an explicit, separate step.
package tomlcli
