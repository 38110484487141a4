// Package hclutil holds small helpers shared by the manifest decoder that
// operate on raw hcl bodies rather than gohcl-decoded structs.
package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// UniqueBlock returns the single block of type typ, or nil when there is
// none. Every repeat produces a diagnostic that points back at the first one.
func UniqueBlock(blocks hcl.Blocks, typ string) (*hcl.Block, hcl.Diagnostics) {
	var first *hcl.Block
	var diags hcl.Diagnostics
	for _, block := range blocks {
		if block.Type != typ {
			continue
		}
		if first == nil {
			first = block
			continue
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Duplicate %q block", typ),
			Detail:   fmt.Sprintf("Only one %q block is allowed; the first was declared at %s.", typ, first.DefRange),
			Subject:  block.DefRange.Ptr(),
		})
	}
	return first, diags
}
