// Package eval compiles node filter expressions.
//
// Filters are expr-lang expressions over an [Env] describing one tree
// node, for example
//
//	leaf && kind == "num" && index > 1
//	type == "string" && prefix(path, "meta")
//	cmppath(path, "b") < 0
//
// Besides the expr builtins, filters may call
//
//	cmppath(a, b string) int    order of two paths
//	validpath(p string) bool    whether p is a valid path
//	prefix(p, q string) bool    whether path p is q or below q
package eval
