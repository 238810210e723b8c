package hcl

import (
	"context"
	"fmt"

	hcl2 "github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/puzzlegrid/internal/ctxlog"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional fields with non-nil,
// zero-width expression objects, so a simple nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl2.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	// A real attribute occupies bytes in the file, while a placeholder for an
	// omitted optional attribute has a zero-width range.
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)

	return isDefined
}

// translateParams evaluates a `params = { ... }` attribute into a map of
// cty values. Params are static: no variables or functions are available.
func translateParams(ctx context.Context, expr hcl2.Expression) (map[string]cty.Value, error) {
	if !isExprDefined(ctx, expr, "params") {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid params: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("params must be an object, got %s", ty.FriendlyName())
	}
	if val.LengthInt() == 0 {
		return nil, nil
	}
	return val.AsValueMap(), nil
}

// translateAnswer evaluates an expected answer attribute. An omitted
// attribute yields nil.
func translateAnswer(ctx context.Context, expr hcl2.Expression, attrName string) (*int, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid expected %s: %w", attrName, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return nil, fmt.Errorf("expected %s must be a whole number: %w", attrName, err)
	}
	return &n, nil
}
