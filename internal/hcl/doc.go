// Package hcl implements config.Loader for HCL files: an optional `session`
// settings block and any number of `mod` manifest blocks.
package hcl
