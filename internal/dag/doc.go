// Package dag holds the dependency graph between extensions. Nodes are
// extension names; an edge a -> b means b depends on a and must load after it.
// Order returns a load order that respects every edge and otherwise keeps the
// order in which nodes were added.
package dag
