// File: tomlcli/merge.go
package tomlcli

// Merge deeply merges source into target and returns the result.
//
// When both nodes are tables, every source key is applied in source
// iteration order: if target holds a table under the same key and the
// incoming value is also a table, the merge recurses in place;
// otherwise the incoming value overwrites the target entry wholesale.
// Arrays and scalars are never merged element-wise. Keys present only
// in target are untouched. In this branch target is mutated and
// returned.
//
// When either side is not a table, source is returned verbatim and
// target is left alone. Callers must therefore always use the return
// value and reassign it at the appropriate location.
func Merge(target, source *Node) *Node {
	if !target.IsTable() || !source.IsTable() {
		return source
	}
	for _, key := range source.Keys() {
		incoming, _ := source.Child(key)
		if existing, ok := target.Child(key); ok && existing.IsTable() && incoming.IsTable() {
			target.SetChild(key, Merge(existing, incoming))
			continue
		}
		target.SetChild(key, incoming)
	}
	return target
}
