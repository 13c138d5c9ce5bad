// Package main builds the steiner command: the batch driver described
// by spec.md §4.6, wiring the stp reader, csr builder, dijkstra kernel,
// and emv DP engine behind the CLI surface in spec.md §6.
//
// Everything outside this package is a library; steiner is the only
// place permitted to turn an error into a tagged diagnostic and a
// non-zero exit (spec.md §7: "Local recovery is not attempted. All
// errors are reported on the diagnostic stream and terminate the
// process.").
package main
