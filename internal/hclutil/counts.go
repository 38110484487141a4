package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty/gocty"
)

// NonNegativeInts decodes every attribute of body as a whole, non-negative
// number. Diagnostics point at the offending expression.
func NonNegativeInts(body hcl.Body) (map[string]int, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]int, len(attrs))
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		var n int
		if err := gocty.FromCtyValue(val, &n); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid count",
				Detail:   fmt.Sprintf("The value of %q must be a whole number: %s.", name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		if n < 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid count",
				Detail:   fmt.Sprintf("The value of %q must not be negative.", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		out[name] = n
	}
	return out, diags
}
