// Package core defines the immutable graph model consumed by the rest of
// this module: vertices and terminals are 0-based integer ids, edges carry
// a nonnegative integer weight, and a Graph, once built, never changes.
//
// 🌲 What is core.Graph?
//
//	A plain, read-only description of G = (V, E, w) plus a terminal set
//	K ⊆ V, as produced by the DIMACS STP reader (package stp) or by a
//	test fixture (package internal/fixtures). Nothing downstream mutates
//	it: the CSR builder (package csr), the Dijkstra kernel, and the EMV
//	DP engine all treat *Graph as a value to read from, never to write to.
//
// Why a separate, dumber graph type instead of reusing a mutable,
// thread-safe one:
//
//   - The algorithms in this module build their working structures (CSR
//     adjacency, DP tables) once per query and never touch core.Graph
//     again, so there is nothing to protect with locks.
//   - Integer vertex ids let every downstream table be a flat slice
//     indexed by vertex id instead of a map keyed by string.
//
// Validation happens once, at construction (NewGraph), and is exhaustive:
// out-of-range endpoints, negative weights, duplicate terminals, and a
// terminal count outside [1, MaxTerminals] are all rejected there so that
// every later stage can assume a well-formed graph.
package core
